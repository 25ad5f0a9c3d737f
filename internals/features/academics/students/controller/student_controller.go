// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolfee_backend/internals/features/academics/students/dto"
	model "schoolfee_backend/internals/features/academics/students/model"
	service "schoolfee_backend/internals/features/academics/students/service"
	helper "schoolfee_backend/internals/helpers"
	helperAuth "schoolfee_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

func mustSchoolID(c *fiber.Ctx) (uuid.UUID, error) {
	sidStr := strings.TrimSpace(c.Params("school_id"))
	if sidStr == "" {
		return uuid.Nil, fmt.Errorf("school_id missing in path")
	}
	return uuid.Parse(sidStr)
}

// GET /:school_id/students?grade=&status=
// The grade filter is the eligibility resolver exposed read-only: matching
// is case-insensitive, and zero matches is an empty list, not an error.
func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SchoolStudent{}).
		Where("school_student_school_id = ?", schoolID)

	if g := service.NormalizeGrade(c.Query("grade")); g != "" {
		q = q.Where("LOWER(school_student_grade_level) = ?", g)
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status", string(model.StudentStatusActive)))); st != "" {
		q = q.Where("school_student_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WriteError(c, err)
	}

	var rows []model.SchoolStudent
	if err := q.Order("school_student_code ASC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonList(c, "", dto.ToStudentResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}
