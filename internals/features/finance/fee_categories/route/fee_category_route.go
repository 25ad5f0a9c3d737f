// file: internals/features/finance/fee_categories/route/fee_category_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryController "schoolfee_backend/internals/features/finance/fee_categories/controller"
)

// FeeCategoryRoutes mounts:
//   - POST   /:school_id/fee-categories       (admin)
//   - GET    /:school_id/fee-categories       (staff)
//   - PATCH  /:school_id/fee-categories/:id   (admin)
//   - DELETE /:school_id/fee-categories/:id   (admin, blocked while referenced)
func FeeCategoryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := categoryController.NewFeeCategoryController(db)

	grp := r.Group("/:school_id/fee-categories")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
