// file: internals/features/finance/fee_structures/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	yearModel "schoolfee_backend/internals/features/academics/academic_years/model"
	dto "schoolfee_backend/internals/features/finance/fee_structures/dto"
	model "schoolfee_backend/internals/features/finance/fee_structures/model"
	service "schoolfee_backend/internals/features/finance/fee_structures/service"
	scheduleModel "schoolfee_backend/internals/features/finance/payment_schedules/model"
	helper "schoolfee_backend/internals/helpers"
	helperAuth "schoolfee_backend/internals/helpers/auth"
)

type FeeStructureController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeStructureController(db *gorm.DB) *FeeStructureController {
	return &FeeStructureController{
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

/* =======================================================
   AUTHORING VALIDATION (shared by create & update)
======================================================= */

// validateAuthoring runs every pre-write check: amount reconciliation, year
// ownership, category ownership, (year, grade, program) uniqueness, and the
// "all"-vs-grade-specific exclusivity. excludeID skips the structure itself
// on update. All checks run before any mutation.
func (ctl *FeeStructureController) validateAuthoring(schoolID uuid.UUID, in dto.FeeStructureCreateDTO, excludeID *uuid.UUID) error {
	// 1) amounts reconcile within tolerance
	amounts := make([]float64, 0, len(in.Categories))
	for _, it := range in.Categories {
		amounts = append(amounts, it.Amount)
	}
	if err := service.CheckReconciliation(service.SumAmounts(amounts), in.FeeStructureTotalAmount); err != nil {
		return err
	}

	// 2) academic year belongs to this school
	var year yearModel.AcademicYear
	if err := ctl.DB.First(&year,
		"academic_year_id = ? AND academic_year_school_id = ?",
		in.FeeStructureAcademicYearID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NewNotFoundError("academic year")
		}
		return err
	}

	// 3) every referenced category belongs to this school
	catIDs := make([]uuid.UUID, 0, len(in.Categories))
	for _, it := range in.Categories {
		catIDs = append(catIDs, it.CategoryID)
	}
	var catCount int64
	if err := ctl.DB.Table("fee_categories").
		Where("fee_category_id IN ?", catIDs).
		Where("fee_category_school_id = ?", schoolID).
		Where("fee_category_deleted_at IS NULL").
		Count(&catCount).Error; err != nil {
		return err
	}
	if catCount != int64(len(dedupeUUIDs(catIDs))) {
		return helper.NewNotFoundError("fee category")
	}

	// 4) uniqueness per (year, grade ci, program)
	dupQ := ctl.DB.Model(&model.FeeStructure{}).
		Where("fee_structure_academic_year_id = ?", in.FeeStructureAcademicYearID).
		Where("LOWER(fee_structure_grade_level) = ?", strings.ToLower(strings.TrimSpace(in.FeeStructureGradeLevel))).
		Where("fee_structure_program_type = ?", service.NormalizeProgramType(in.FeeStructureProgramType))
	if excludeID != nil {
		dupQ = dupQ.Where("fee_structure_id <> ?", *excludeID)
	}
	var dup int64
	if err := dupQ.Count(&dup).Error; err != nil {
		return err
	}
	if dup > 0 {
		return helper.NewConflictError(
			"a fee structure already exists for this grade/program in this academic year")
	}

	// 5) cross-mode exclusivity over the whole year
	modeQ := ctl.DB.Model(&model.FeeStructure{}).
		Where("fee_structure_academic_year_id = ?", in.FeeStructureAcademicYearID)
	if excludeID != nil {
		modeQ = modeQ.Where("fee_structure_id <> ?", *excludeID)
	}
	var programTypes []string
	if err := modeQ.Distinct().Pluck("fee_structure_program_type", &programTypes).Error; err != nil {
		return err
	}
	hasAll, hasGrade := false, false
	for _, pt := range programTypes {
		if service.NormalizeProgramType(pt) == model.ProgramTypeAll {
			hasAll = true
		} else {
			hasGrade = true
		}
	}
	return service.CheckCrossMode(in.FeeStructureProgramType, hasAll, hasGrade)
}

func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

/* =======================================================
   CREATE
======================================================= */

// POST /:school_id/fee-structures
func (ctl *FeeStructureController) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	var in dto.FeeStructureCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}
	in.FeeStructureProgramType = service.NormalizeProgramType(in.FeeStructureProgramType)

	if err := ctl.validateAuthoring(schoolID, in, nil); err != nil {
		return helper.WriteError(c, err)
	}

	m := dto.FeeStructureCreateDTOToModel(in, schoolID)

	// Structure + items are all-or-nothing.
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		items := make([]model.FeeStructureItem, 0, len(in.Categories))
		for _, it := range in.Categories {
			items = append(items, dto.ItemDTOToModel(it, m.FeeStructureID))
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		m.FeeStructureItems = items
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			// lost the race to the partial unique index
			return helper.WriteError(c, helper.NewConflictError(
				"a fee structure already exists for this grade/program in this academic year"))
		}
		return helper.WriteError(c, err)
	}

	return helper.JsonCreated(c, "fee structure created", dto.ToFeeStructureResponse(m))
}

/* =======================================================
   UPDATE (full item-set replace)
======================================================= */

// PATCH /:school_id/fee-structures/:id
func (ctl *FeeStructureController) Update(c *fiber.Ctx) error {
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

	var in dto.FeeStructureCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}
	in.FeeStructureProgramType = service.NormalizeProgramType(in.FeeStructureProgramType)

	var m model.FeeStructure
	if err := ctl.DB.First(&m,
		"fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("fee structure"))
		}
		return helper.WriteError(c, err)
	}

	if err := ctl.validateAuthoring(schoolID, in, &id); err != nil {
		return helper.WriteError(c, err)
	}

	m.FeeStructureName = in.FeeStructureName
	m.FeeStructureAcademicYearID = in.FeeStructureAcademicYearID
	m.FeeStructureGradeLevel = in.FeeStructureGradeLevel
	m.FeeStructureProgramType = in.FeeStructureProgramType
	m.FeeStructureTotalAmount = in.FeeStructureTotalAmount

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		// full replace: delete-all-then-insert
		if err := tx.Where("fee_structure_item_structure_id = ?", m.FeeStructureID).
			Delete(&model.FeeStructureItem{}).Error; err != nil {
			return err
		}
		items := make([]model.FeeStructureItem, 0, len(in.Categories))
		for _, it := range in.Categories {
			items = append(items, dto.ItemDTOToModel(it, m.FeeStructureID))
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		m.FeeStructureItems = items
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.WriteError(c, helper.NewConflictError(
				"a fee structure already exists for this grade/program in this academic year"))
		}
		return helper.WriteError(c, err)
	}

	return helper.JsonUpdated(c, "fee structure updated", dto.ToFeeStructureResponse(m))
}

/* =======================================================
   DELETE (blocked once published & assigned)
======================================================= */

// DELETE /:school_id/fee-structures/:id
func (ctl *FeeStructureController) Delete(c *fiber.Ctx) error {
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

	var m model.FeeStructure
	if err := ctl.DB.First(&m,
		"fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("fee structure"))
		}
		return helper.WriteError(c, err)
	}

	if m.FeeStructureStatus == model.FeeStructureStatusPublished {
		var refs int64
		if err := ctl.DB.Table("student_fee_assignments").
			Where("student_fee_assignment_structure_id = ?", id).
			Where("student_fee_assignment_deleted_at IS NULL").
			Count(&refs).Error; err != nil {
			return helper.WriteError(c, err)
		}
		if refs > 0 {
			return helper.WriteError(c, helper.NewConflictError(
				"fee structure is published and already assigned to students; archive it instead of deleting"))
		}
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		// retire alive schedules with the parent
		return tx.Table("payment_schedules").
			Where("payment_schedule_structure_id = ?", id).
			Where("payment_schedule_deleted_at IS NULL").
			Update("payment_schedule_deleted_at", gorm.Expr("NOW()")).Error
	})
	if err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonDeleted(c, "fee structure deleted", fiber.Map{"fee_structure_id": id})
}

/* =======================================================
   READS
======================================================= */

// GET /:school_id/fee-structures
func (ctl *FeeStructureController) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FeeStructure{}).
		Where("fee_structure_school_id = ?", schoolID)

	if y := strings.TrimSpace(c.Query("academic_year_id")); y != "" {
		yearID, err := uuid.Parse(y)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("fee_structure_academic_year_id = ?", yearID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("fee_structure_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WriteError(c, err)
	}

	var rows []model.FeeStructure
	if err := q.Preload("FeeStructureItems").
		Order("fee_structure_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonList(c, "", dto.ToFeeStructureResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /:school_id/fee-structures/:id
func (ctl *FeeStructureController) GetByID(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.FeeStructure
	if err := ctl.DB.Preload("FeeStructureItems").
		First(&m, "fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("fee structure"))
		}
		return helper.WriteError(c, err)
	}

	var schedules []scheduleModel.PaymentSchedule
	if err := ctl.DB.
		Where("payment_schedule_structure_id = ?", id).
		Order("payment_schedule_created_at ASC").
		Find(&schedules).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonOK(c, "", dto.ToFeeStructureDetailResponse(m, schedules))
}

/* =======================================================
   STATUS (draft → published → archived)
======================================================= */

// PATCH /:school_id/fee-structures/:id/status
func (ctl *FeeStructureController) UpdateStatus(c *fiber.Ctx) error {
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

	var in dto.FeeStructureStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.FeeStructure
	if err := ctl.DB.First(&m,
		"fee_structure_id = ? AND fee_structure_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("fee structure"))
		}
		return helper.WriteError(c, err)
	}

	if err := service.CheckStatusTransition(m.FeeStructureStatus, in.FeeStructureStatus); err != nil {
		return helper.WriteError(c, err)
	}

	m.FeeStructureStatus = in.FeeStructureStatus
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonUpdated(c, "fee structure status updated", dto.ToFeeStructureResponse(m))
}
