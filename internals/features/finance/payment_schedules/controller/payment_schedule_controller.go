// file: internals/features/finance/payment_schedules/controller/payment_schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	yearModel "schoolfee_backend/internals/features/academics/academic_years/model"
	structureModel "schoolfee_backend/internals/features/finance/fee_structures/model"
	dto "schoolfee_backend/internals/features/finance/payment_schedules/dto"
	model "schoolfee_backend/internals/features/finance/payment_schedules/model"
	service "schoolfee_backend/internals/features/finance/payment_schedules/service"
	helper "schoolfee_backend/internals/helpers"
	helperAuth "schoolfee_backend/internals/helpers/auth"
)

type PaymentScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentScheduleController(db *gorm.DB) *PaymentScheduleController {
	return &PaymentScheduleController{
		DB:        db,
		Validator: validator.New(),
	}
}

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	sidStr := strings.TrimSpace(c.Params("school_id"))
	if sidStr == "" {
		return uuid.Nil, fmt.Errorf("school_id missing in path")
	}
	return uuid.Parse(sidStr)
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// loadOwnedStructure fetches the parent structure scoped to the school.
func (ctl *PaymentScheduleController) loadOwnedStructure(schoolID, structureID uuid.UUID) (structureModel.FeeStructure, error) {
	var st structureModel.FeeStructure
	err := ctl.DB.First(&st,
		"fee_structure_id = ? AND fee_structure_school_id = ?", structureID, schoolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return st, helper.NewNotFoundError("fee structure")
	}
	return st, err
}

// POST /:school_id/fee-structures/:structure_id/payment-schedules
func (ctl *PaymentScheduleController) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	structureID, err := parseUUIDParam(c, "structure_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid structure_id")
	}

	var in dto.PaymentScheduleCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}
	if err := service.CheckDiscount(in.PaymentScheduleDiscountPercentage); err != nil {
		return helper.WriteError(c, err)
	}

	st, err := ctl.loadOwnedStructure(schoolID, structureID)
	if err != nil {
		return helper.WriteError(c, err)
	}

	var year yearModel.AcademicYear
	if err := ctl.DB.First(&year,
		"academic_year_id = ? AND academic_year_school_id = ?",
		st.FeeStructureAcademicYearID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("academic year"))
		}
		return helper.WriteError(c, err)
	}

	startDate := year.AcademicYearStartDate
	if in.StartDate != nil {
		startDate = *in.StartDate
	}

	installments, err := service.BuildInstallments(service.GenerateInput{
		Type:      in.PaymentScheduleType,
		Total:     st.FeeStructureTotalAmount,
		TermCount: int(year.AcademicYearTermCount),
		StartDate: startDate,
		Custom:    dto.CustomInstallmentsToModel(in.Installments),
	})
	if err != nil {
		return helper.WriteError(c, err)
	}

	currency := strings.ToUpper(strings.TrimSpace(in.PaymentScheduleCurrency))
	if currency == "" {
		currency = "UGX"
	}

	m := model.PaymentSchedule{
		PaymentScheduleSchoolID:           schoolID,
		PaymentScheduleStructureID:        st.FeeStructureID,
		PaymentScheduleType:               in.PaymentScheduleType,
		PaymentScheduleDiscountPercentage: in.PaymentScheduleDiscountPercentage,
		PaymentScheduleCurrency:           currency,
		PaymentScheduleInstallments:       datatypes.NewJSONSlice(installments),
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonCreated(c, "payment schedule created",
		dto.ToPaymentScheduleResponse(m, st.FeeStructureTotalAmount))
}

// GET /:school_id/fee-structures/:structure_id/payment-schedules
func (ctl *PaymentScheduleController) ListByStructure(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	structureID, err := parseUUIDParam(c, "structure_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid structure_id")
	}

	st, err := ctl.loadOwnedStructure(schoolID, structureID)
	if err != nil {
		return helper.WriteError(c, err)
	}

	var rows []model.PaymentSchedule
	if err := ctl.DB.
		Where("payment_schedule_structure_id = ?", structureID).
		Order("payment_schedule_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonOK(c, "",
		dto.ToPaymentScheduleResponses(rows, st.FeeStructureTotalAmount))
}

// DELETE /:school_id/payment-schedules/:id
// Blocked while alive assignments still reference the schedule.
func (ctl *PaymentScheduleController) Delete(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.PaymentSchedule
	if err := ctl.DB.First(&m,
		"payment_schedule_id = ? AND payment_schedule_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("payment schedule"))
		}
		return helper.WriteError(c, err)
	}

	var refs int64
	if err := ctl.DB.Table("student_fee_assignments").
		Where("student_fee_assignment_schedule_id = ?", id).
		Where("student_fee_assignment_deleted_at IS NULL").
		Count(&refs).Error; err != nil {
		return helper.WriteError(c, err)
	}
	if refs > 0 {
		return helper.WriteError(c, helper.NewConflictError(
			"payment schedule is referenced by existing student assignments"))
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonDeleted(c, "payment schedule deleted", fiber.Map{"payment_schedule_id": id})
}
