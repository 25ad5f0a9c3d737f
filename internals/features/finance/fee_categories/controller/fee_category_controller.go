// file: internals/features/finance/fee_categories/controller/fee_category_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolfee_backend/internals/features/finance/fee_categories/dto"
	model "schoolfee_backend/internals/features/finance/fee_categories/model"
	helper "schoolfee_backend/internals/helpers"
	helperAuth "schoolfee_backend/internals/helpers/auth"
)

type FeeCategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeCategoryController(db *gorm.DB) *FeeCategoryController {
	return &FeeCategoryController{
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

// POST /:school_id/fee-categories
func (ctl *FeeCategoryController) Create(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolAdmin(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	var in dto.FeeCategoryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}

	m := dto.FeeCategoryCreateDTOToModel(in, schoolID)
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonCreated(c, "fee category created", dto.ToFeeCategoryResponse(m))
}

// GET /:school_id/fee-categories
func (ctl *FeeCategoryController) List(c *fiber.Ctx) error {
	schoolID, err := mustSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid school_id")
	}
	if _, err := helperAuth.EnsureSchoolStaff(c, schoolID); err != nil {
		return helper.WriteError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FeeCategory{}).
		Where("fee_category_school_id = ?", schoolID)

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("fee_category_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WriteError(c, err)
	}

	var rows []model.FeeCategory
	if err := q.Order("fee_category_name ASC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonList(c, "", dto.ToFeeCategoryResponses(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// PATCH /:school_id/fee-categories/:id
func (ctl *FeeCategoryController) Update(c *fiber.Ctx) error {
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

	var in dto.FeeCategoryUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := ctl.Validator.Struct(&in); err != nil {
		return helper.ValidatorError(c, err)
	}

	var m model.FeeCategory
	if err := ctl.DB.First(&m,
		"fee_category_id = ? AND fee_category_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("fee category"))
		}
		return helper.WriteError(c, err)
	}

	dto.ApplyFeeCategoryUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonUpdated(c, "fee category updated", dto.ToFeeCategoryResponse(m))
}

// DELETE /:school_id/fee-categories/:id
// Blocked while any alive structure item still references the category.
func (ctl *FeeCategoryController) Delete(c *fiber.Ctx) error {
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

	var m model.FeeCategory
	if err := ctl.DB.First(&m,
		"fee_category_id = ? AND fee_category_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WriteError(c, helper.NewNotFoundError("fee category"))
		}
		return helper.WriteError(c, err)
	}

	var refs int64
	if err := ctl.DB.Table("fee_structure_items").
		Joins("JOIN fee_structures ON fee_structures.fee_structure_id = fee_structure_items.fee_structure_item_structure_id").
		Where("fee_structure_items.fee_structure_item_category_id = ?", id).
		Where("fee_structures.fee_structure_deleted_at IS NULL").
		Count(&refs).Error; err != nil {
		return helper.WriteError(c, err)
	}
	if refs > 0 {
		return helper.WriteError(c, helper.NewConflictError(
			"fee category is referenced by existing fee structures"))
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.WriteError(c, err)
	}

	return helper.JsonDeleted(c, "fee category deleted", fiber.Map{"fee_category_id": id})
}
