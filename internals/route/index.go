// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolfee_backend/internals/configs"
	yearRoute "schoolfee_backend/internals/features/academics/academic_years/route"
	studentRoute "schoolfee_backend/internals/features/academics/students/route"
	assignmentRoute "schoolfee_backend/internals/features/finance/assignments/route"
	categoryRoute "schoolfee_backend/internals/features/finance/fee_categories/route"
	structureRoute "schoolfee_backend/internals/features/finance/fee_structures/route"
	scheduleRoute "schoolfee_backend/internals/features/finance/payment_schedules/route"
	authMiddleware "schoolfee_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under one authenticated group. Role and
// tenant checks live in the controllers; the group only establishes
// identity from the JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	yearRoute.AcademicYearRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	categoryRoute.FeeCategoryRoutes(api, db)
	structureRoute.FeeStructureRoutes(api, db)
	scheduleRoute.PaymentScheduleRoutes(api, db)
	assignmentRoute.AssignmentRoutes(api, db)
}
