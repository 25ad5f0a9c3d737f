// file: internals/features/finance/fee_structures/route/fee_structure_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	structureController "schoolfee_backend/internals/features/finance/fee_structures/controller"
)

// FeeStructureRoutes mounts:
//   - POST   /:school_id/fee-structures              (admin)
//   - GET    /:school_id/fee-structures              (staff)
//   - GET    /:school_id/fee-structures/:id          (staff)
//   - PATCH  /:school_id/fee-structures/:id          (admin, full item replace)
//   - PATCH  /:school_id/fee-structures/:id/status   (admin)
//   - DELETE /:school_id/fee-structures/:id          (admin, cascades schedules)
func FeeStructureRoutes(r fiber.Router, db *gorm.DB) {
	ctl := structureController.NewFeeStructureController(db)

	grp := r.Group("/:school_id/fee-structures")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id/status", ctl.UpdateStatus)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
