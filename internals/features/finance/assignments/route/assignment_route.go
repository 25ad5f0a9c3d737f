// file: internals/features/finance/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "schoolfee_backend/internals/features/finance/assignments/controller"
)

// AssignmentRoutes mounts:
//   - POST  /:school_id/fee-assignments/auto-assign   (admin; staff for dry_run)
//   - POST  /:school_id/fee-assignments               (admin)
//   - GET   /:school_id/fee-assignments               (staff)
//   - PATCH /:school_id/fee-assignments/:id/cancel    (admin)
func AssignmentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewAssignmentController(db)

	grp := r.Group("/:school_id/fee-assignments")
	grp.Post("/auto-assign", ctl.AutoAssign)
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Patch("/:id/cancel", ctl.Cancel)
}
