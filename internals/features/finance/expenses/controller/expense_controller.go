// file: internals/features/finance/expenses/controller/expense_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/finance/expenses/dto"
	model "madrasaku_backend/internals/features/finance/expenses/model"
	service "madrasaku_backend/internals/features/finance/expenses/service"
	feeservice "madrasaku_backend/internals/features/finance/fees/service"
	helper "madrasaku_backend/internals/helpers"
)

type ExpenseHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /expenses)
// -----------------------------------------
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	recordedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	exp, err := service.Create(c.UserContext(), h.DB, in.ToInput(recordedBy))
	if err != nil {
		if e, ok := feeservice.AsError(err); ok {
			return helper.JsonError(c, feeservice.HTTPStatus(err), e.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "expense tercatat", dto.ToExpenseResponse(*exp))
}

// -----------------------------------------
// List (GET /expenses)
// Filters (opsional): category, branch_id, date_from, date_to,
// min_amount, max_amount, page, per_page
// -----------------------------------------
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Expense{})

	if v := strings.TrimSpace(c.Query("category")); v != "" {
		cat := model.ExpenseCategory(v)
		if !cat.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid category")
		}
		q = q.Where("expense_category = ?", cat)
	}
	if v := c.Query("branch_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("expense_branch_id = ?", id)
		}
	}
	if from, to, err := helper.ParseDateRange(c.Query("date_from"), c.Query("date_to")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	} else {
		if from != nil {
			q = q.Where("expense_created_at >= ?", *from)
		}
		if to != nil {
			q = q.Where("expense_created_at <= ?", *to)
		}
	}
	if v := c.QueryInt("min_amount", -1); v >= 0 {
		q = q.Where("expense_amount_idr >= ?", v)
	}
	if v := c.QueryInt("max_amount", -1); v >= 0 {
		q = q.Where("expense_amount_idr <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Expense
	if err := q.
		Order("expense_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToExpenseResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// Detail (GET /expenses/:id)
// -----------------------------------------
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Expense
	if err := h.DB.First(&m, "expense_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "expense tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToExpenseResponse(m))
}
