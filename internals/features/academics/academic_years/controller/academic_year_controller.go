// file: internals/features/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolfee_backend/internals/features/academics/academic_years/dto"
	model "schoolfee_backend/internals/features/academics/academic_years/model"
	helper "schoolfee_backend/internals/helpers"
	helperAuth "schoolfee_backend/internals/helpers/auth"
)

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{
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

// POST /:school_id/academic-years
func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	var in dto.AcademicYearCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}
	if !in.AcademicYearEndDate.After(in.AcademicYearStartDate) {
		return helper.WriteError(c, helper.NewFieldValidationError(
			"academic_year_end_date", "end date must be after start date"))
	}

	m := dto.AcademicYearCreateDTOToModel(in, schoolID)
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonCreated(c, "academic year created", dto.ToAcademicYearResponse(m))
}

// GET /:school_id/academic-years
func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.AcademicYear{}).
		Where("academic_year_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WriteError(c, err)
	}

	var rows []model.AcademicYear
	if err := q.Order("academic_year_start_date DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonList(c, "", dto.ToAcademicYearResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
