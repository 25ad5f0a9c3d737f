// file: internals/features/finance/payment_schedules/route/payment_schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "schoolfee_backend/internals/features/finance/payment_schedules/controller"
)

// PaymentScheduleRoutes mounts:
//   - POST   /:school_id/fee-structures/:structure_id/payment-schedules  (admin)
//   - GET    /:school_id/fee-structures/:structure_id/payment-schedules  (staff)
//   - DELETE /:school_id/payment-schedules/:id                           (admin)
func PaymentScheduleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleController.NewPaymentScheduleController(db)

	nested := r.Group("/:school_id/fee-structures/:structure_id/payment-schedules")
	nested.Post("/", ctl.Create)
	nested.Get("/", ctl.ListByStructure)

	flat := r.Group("/:school_id/payment-schedules")
	flat.Delete("/:id", ctl.Delete)
}
