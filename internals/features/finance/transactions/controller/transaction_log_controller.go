// file: internals/features/finance/transactions/controller/transaction_log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/finance/transactions/dto"
	model "madrasaku_backend/internals/features/finance/transactions/model"
	service "madrasaku_backend/internals/features/finance/transactions/service"
	helper "madrasaku_backend/internals/helpers"
)

type TransactionLogHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /transactions)
// Filters (opsional): type, reference_model, reference_id, performed_by,
// branch_id, date_from, date_to, min_amount, max_amount, page, per_page
// -----------------------------------------
func (h *TransactionLogHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.TransactionLog{})

	if v := strings.TrimSpace(c.Query("type")); v != "" {
		t := model.TransactionType(v)
		if !t.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid transaction type")
		}
		q = q.Where("transaction_log_type = ?", t)
	}
	if v := strings.TrimSpace(c.Query("reference_model")); v != "" {
		if !service.ValidReferenceModel(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid reference model")
		}
		q = q.Where("transaction_log_reference_model = ?", v)
	}
	if v := c.Query("reference_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid reference_id")
		}
		q = q.Where("transaction_log_reference_id = ?", id)
	}
	if v := c.Query("performed_by"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("transaction_log_performed_by = ?", id)
		}
	}
	if v := c.Query("branch_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("transaction_log_branch_id = ?", id)
		}
	}
	if from, to, err := helper.ParseDateRange(c.Query("date_from"), c.Query("date_to")); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	} else {
		if from != nil {
			q = q.Where("transaction_log_created_at >= ?", *from)
		}
		if to != nil {
			q = q.Where("transaction_log_created_at <= ?", *to)
		}
	}
	if v := c.QueryInt("min_amount", -1); v >= 0 {
		q = q.Where("transaction_log_amount_idr >= ?", v)
	}
	if v := c.QueryInt("max_amount", -1); v >= 0 {
		q = q.Where("transaction_log_amount_idr <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.TransactionLog
	if err := q.
		Order("transaction_log_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToTransactionLogResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// Detail (GET /transactions/:id)
// -----------------------------------------
func (h *TransactionLogHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.TransactionLog
	if err := h.DB.First(&m, "transaction_log_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "transaction log tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToTransactionLogResponse(m))
}

// -----------------------------------------
// Delete (DELETE /transactions/:id)
// Override administratif. Log bersifat append-only; endpoint ini
// hanya untuk koreksi data oleh admin, bukan alur normal.
// -----------------------------------------
func (h *TransactionLogHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.TransactionLog{}, "transaction_log_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "transaction log tidak ditemukan")
	}
	return helper.JsonDeleted(c, "transaction log dihapus", fiber.Map{"transaction_log_id": id})
}
