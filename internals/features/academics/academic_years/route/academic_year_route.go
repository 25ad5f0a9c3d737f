// file: internals/features/academics/academic_years/route/academic_year_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearController "schoolfee_backend/internals/features/academics/academic_years/controller"
)

// AcademicYearRoutes mounts:
//   - POST /:school_id/academic-years   (admin)
//   - GET  /:school_id/academic-years   (staff)
func AcademicYearRoutes(r fiber.Router, db *gorm.DB) {
	ctl := yearController.NewAcademicYearController(db)

	grp := r.Group("/:school_id/academic-years")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
}
