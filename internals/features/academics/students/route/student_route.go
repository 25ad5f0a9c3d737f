// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolfee_backend/internals/features/academics/students/controller"
)

// StudentRoutes mounts:
//   - GET /:school_id/students?grade=&status=   (staff)
//
// The grade filter is the eligibility resolver; auto-assign previews call
// the same query through the service layer.
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	grp := r.Group("/:school_id/students")
	grp.Get("/", ctl.List)
}
