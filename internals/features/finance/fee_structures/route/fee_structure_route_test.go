// file: internals/features/finance/fee_structures/route/fee_structure_route_test.go
package route

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every documented method/path pair must resolve to a handler. A 405 means
// a registration is missing; the handlers themselves reject unauthenticated
// calls, which is fine here.
func TestFeeStructureRoutesAreMounted(t *testing.T) {
	app := fiber.New()
	FeeStructureRoutes(app, nil)

	schoolID := uuid.NewString()
	structureID := uuid.NewString()

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, fmt.Sprintf("/%s/fee-structures/", schoolID)},
		{fiber.MethodGet, fmt.Sprintf("/%s/fee-structures/", schoolID)},
		{fiber.MethodGet, fmt.Sprintf("/%s/fee-structures/%s", schoolID, structureID)},
		{fiber.MethodPatch, fmt.Sprintf("/%s/fee-structures/%s", schoolID, structureID)},
		{fiber.MethodPatch, fmt.Sprintf("/%s/fee-structures/%s/status", schoolID, structureID)},
		{fiber.MethodDelete, fmt.Sprintf("/%s/fee-structures/%s", schoolID, structureID)},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			require.NoError(t, err)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.NotEqual(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
			assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}
