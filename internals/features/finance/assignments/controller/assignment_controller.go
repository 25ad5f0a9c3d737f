// file: internals/features/finance/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	yearModel "schoolfee_backend/internals/features/academics/academic_years/model"
	studentModel "schoolfee_backend/internals/features/academics/students/model"
	studentService "schoolfee_backend/internals/features/academics/students/service"
	dto "schoolfee_backend/internals/features/finance/assignments/dto"
	model "schoolfee_backend/internals/features/finance/assignments/model"
	service "schoolfee_backend/internals/features/finance/assignments/service"
	structureModel "schoolfee_backend/internals/features/finance/fee_structures/model"
	scheduleModel "schoolfee_backend/internals/features/finance/payment_schedules/model"
	helper "schoolfee_backend/internals/helpers"
	helperAuth "schoolfee_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
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

/* =========================================================
   VALIDATION LOADS (all scoped to the tenant)
========================================================= */

func (ctl *AssignmentController) loadOwnedStructure(schoolID, structureID uuid.UUID) (structureModel.FeeStructure, error) {
	var st structureModel.FeeStructure
	err := ctl.DB.First(&st,
		"fee_structure_id = ? AND fee_structure_school_id = ?", structureID, schoolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return st, helper.NewNotFoundError("fee structure")
	}
	return st, err
}

func (ctl *AssignmentController) loadOwnedYear(schoolID, yearID uuid.UUID) (yearModel.AcademicYear, error) {
	var year yearModel.AcademicYear
	err := ctl.DB.First(&year,
		"academic_year_id = ? AND academic_year_school_id = ?", yearID, schoolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return year, helper.NewNotFoundError("academic year")
	}
	return year, err
}

// loadSchedules resolves every requested schedule under the given structure.
// All-or-nothing: a single unknown ID fails the whole request, naming the
// missing IDs so the caller can fix the payload in one pass.
func (ctl *AssignmentController) loadSchedules(schoolID, structureID uuid.UUID, ids []uuid.UUID) ([]scheduleModel.PaymentSchedule, error) {
	var rows []scheduleModel.PaymentSchedule
	if err := ctl.DB.
		Where("payment_schedule_school_id = ?", schoolID).
		Where("payment_schedule_structure_id = ?", structureID).
		Where("payment_schedule_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]struct{}, len(rows))
	for _, r := range rows {
		found[r.PaymentScheduleID] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, helper.NewNotFoundError(
			"payment schedule(s) " + strings.Join(missing, ", "))
	}
	return rows, nil
}

// activeAssignedStudents returns the set of students that already hold an
// active assignment for (structure, year).
func (ctl *AssignmentController) activeAssignedStudents(structureID, yearID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := ctl.DB.Model(&model.StudentFeeAssignment{}).
		Where("student_fee_assignment_structure_id = ?", structureID).
		Where("student_fee_assignment_academic_year_id = ?", yearID).
		Where("student_fee_assignment_status = ?", model.AssignmentStatusActive).
		Distinct().
		Pluck("student_fee_assignment_student_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func dedupeUUIDs(in []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(in))
	out := make([]uuid.UUID, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

/* =========================================================
   BULK ENGINE
========================================================= */

// POST /:school_id/fee-assignments/auto-assign
// dry_run=true plans without writing (staff may run it); dry_run=false
// inserts in sequential batches and reports partial failures with 207.
func (ctl *AssignmentController) AutoAssign(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}

	var in dto.AutoAssignRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}

	// Dry-run is a read; the real run mutates and needs admin.
	if in.DryRun {
		if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
			return helper.WriteError(c, err)
		}
	} else {
		if _, err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
			return helper.WriteError(c, err)
		}
	}

	st, err := ctl.loadOwnedStructure(schoolID, in.StructureID)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if st.FeeStructureAcademicYearID != in.AcademicYearID {
		return helper.WriteError(c, helper.NewFieldValidationError(
			"academic_year_id", "does not match the fee structure's academic year"))
	}
	if _, err := ctl.loadOwnedYear(schoolID, in.AcademicYearID); err != nil {
		return helper.WriteError(c, err)
	}

	scheduleIDs := dedupeUUIDs(in.ScheduleIDs)
	if _, err := ctl.loadSchedules(schoolID, in.StructureID, scheduleIDs); err != nil {
		return helper.WriteError(c, err)
	}

	// program_type "all" widens eligibility to the entire active roster;
	// otherwise the structure's grade level filters it (case-insensitive).
	grade := st.FeeStructureGradeLevel
	if st.FeeStructureProgramType == structureModel.ProgramTypeAll {
		grade = ""
	}
	candidates, err := studentService.ResolveEligible(ctl.DB, schoolID, grade)
	if err != nil {
		return helper.WriteError(c, err)
	}

	candidateIDs := make([]uuid.UUID, 0, len(candidates))
	for _, s := range candidates {
		candidateIDs = append(candidateIDs, s.SchoolStudentID)
	}

	assigned, err := ctl.activeAssignedStudents(in.StructureID, in.AcademicYearID)
	if err != nil {
		return helper.WriteError(c, err)
	}

	toAssign := service.DiffCandidates(candidateIDs, assigned)
	summary := service.BuildSummary(len(candidateIDs), len(toAssign), len(scheduleIDs))

	if in.DryRun {
		return helper.JsonOK(c, "dry run: no assignments were created", dto.AutoAssignPreview{
			DryRun:      true,
			Assignments: dto.BuildPreviewRows(candidates, toAssign, scheduleIDs),
			Summary:     summary,
		})
	}

	if len(toAssign) == 0 {
		return helper.JsonOK(c, "no new assignments needed", dto.AutoAssignResult{
			Created: 0,
			Summary: summary,
		})
	}

	rows := service.BuildRows(schoolID, in.StructureID, in.AcademicYearID, toAssign, scheduleIDs)
	batches := service.Chunk(rows, service.DefaultBatchSize)

	// ON CONFLICT DO NOTHING: a concurrent run racing past the diff hits
	// the partial unique index and is skipped instead of failing the batch.
	report := service.ExecuteBatches(batches, func(batch []model.StudentFeeAssignment) (int, error) {
		res := ctl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&batch)
		if res.Error != nil {
			return 0, res.Error
		}
		return int(res.RowsAffected), nil
	})

	result := dto.AutoAssignResult{
		Created:     report.Created,
		BatchErrors: report.Errors,
		Summary:     summary,
	}

	switch {
	case report.AllFailed():
		return helper.JsonError(c, fiber.StatusInternalServerError, "all assignment batches failed")
	case report.Partial():
		return helper.JsonMultiStatus(c,
			fmt.Sprintf("created %d assignments, %d batch(es) failed", report.Created, len(report.Errors)),
			result)
	default:
		return helper.JsonCreated(c,
			fmt.Sprintf("created %d assignments", report.Created), result)
	}
}

/* =========================================================
   SINGLE CRUD
========================================================= */

// POST /:school_id/fee-assignments
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	var in dto.AssignmentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}

	var student studentModel.SchoolStudent
	if err := ctl.DB.First(&student,
		"school_student_id = ? AND school_student_school_id = ?", in.StudentID, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("student"))
		}
		return helper.WriteError(c, err)
	}

	st, err := ctl.loadOwnedStructure(schoolID, in.StructureID)
	if err != nil {
		return helper.WriteError(c, err)
	}
	if st.FeeStructureAcademicYearID != in.AcademicYearID {
		return helper.WriteError(c, helper.NewFieldValidationError(
			"academic_year_id", "does not match the fee structure's academic year"))
	}
	if _, err := ctl.loadOwnedYear(schoolID, in.AcademicYearID); err != nil {
		return helper.WriteError(c, err)
	}
	if _, err := ctl.loadSchedules(schoolID, in.StructureID, []uuid.UUID{in.ScheduleID}); err != nil {
		return helper.WriteError(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&model.StudentFeeAssignment{}).
		Where("student_fee_assignment_student_id = ?", in.StudentID).
		Where("student_fee_assignment_structure_id = ?", in.StructureID).
		Where("student_fee_assignment_academic_year_id = ?", in.AcademicYearID).
		Where("student_fee_assignment_status = ?", model.AssignmentStatusActive).
		Count(&dup).Error; err != nil {
		return helper.WriteError(c, err)
	}
	if dup > 0 {
		return helper.WriteError(c, helper.NewConflictError(
			"student already has an active assignment for this fee structure and academic year"))
	}

	m := model.StudentFeeAssignment{
		StudentFeeAssignmentSchoolID:       schoolID,
		StudentFeeAssignmentStudentID:      in.StudentID,
		StudentFeeAssignmentStructureID:    in.StructureID,
		StudentFeeAssignmentScheduleID:     in.ScheduleID,
		StudentFeeAssignmentAcademicYearID: in.AcademicYearID,
		StudentFeeAssignmentStatus:         model.AssignmentStatusActive,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.WriteError(c, helper.NewConflictError(
				"student already has an active assignment for this fee structure and academic year"))
		}
		return helper.WriteError(c, err)
	}

	return helper.JsonCreated(c, "assignment created", dto.ToAssignmentResponse(&m))
}

// GET /:school_id/fee-assignments?academic_year_id=&structure_id=&student_id=&status=
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.StudentFeeAssignment{}).
		Where("student_fee_assignment_school_id = ?", schoolID)

	if raw := strings.TrimSpace(c.Query("academic_year_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid academic_year_id")
		}
		q = q.Where("student_fee_assignment_academic_year_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("structure_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid structure_id")
		}
		q = q.Where("student_fee_assignment_structure_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("student_fee_assignment_student_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_fee_assignment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WriteError(c, err)
	}

	var rows []model.StudentFeeAssignment
	if err := q.
		Order("student_fee_assignment_created_at DESC").
		Limit(pg.Limit).
		Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonList(c, "", dto.ToAssignmentResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// PATCH /:school_id/fee-assignments/:id/cancel
// active → cancelled; cancelling frees the (student, structure, year) slot
// under the partial unique index.
func (ctl *AssignmentController) Cancel(c *fiber.Ctx) error {
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

	var m model.StudentFeeAssignment
	if err := ctl.DB.First(&m,
		"student_fee_assignment_id = ? AND student_fee_assignment_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("assignment"))
		}
		return helper.WriteError(c, err)
	}

	if m.StudentFeeAssignmentStatus != model.AssignmentStatusActive {
		return helper.WriteError(c, helper.NewConflictError(
			fmt.Sprintf("assignment is %s and cannot be cancelled", m.StudentFeeAssignmentStatus)))
	}

	if err := ctl.DB.Model(&m).
		Update("student_fee_assignment_status", model.AssignmentStatusCancelled).Error; err != nil {
		return helper.WriteError(c, err)
	}
	m.StudentFeeAssignmentStatus = model.AssignmentStatusCancelled

	return helper.JsonUpdated(c, "assignment cancelled", dto.ToAssignmentResponse(&m))
}
