// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/finance/fees/dto"
	model "madrasaku_backend/internals/features/finance/fees/model"
	service "madrasaku_backend/internals/features/finance/fees/service"
	helper "madrasaku_backend/internals/helpers"
)

type FeeHandler struct {
	DB *gorm.DB
}

// jsonServiceError memetakan *service.Error ke response standar.
func jsonServiceError(c *fiber.Ctx, err error) error {
	if e, ok := service.AsError(err); ok {
		if e.Kind == service.KindValidation && len(e.Fields) > 0 {
			fields := make(map[string][]string, len(e.Fields))
			for k, v := range e.Fields {
				fields[k] = []string{v}
			}
			return helper.JsonErrorWithFields(c, service.HTTPStatus(err), e.Message, fields)
		}
		if e.Kind == service.KindInternal {
			// pesan internal tidak membocorkan detail data layer
			return helper.JsonError(c, fiber.StatusInternalServerError, e.Message)
		}
		return helper.JsonError(c, service.HTTPStatus(err), e.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// -----------------------------------------
// Register (POST /fees)
// -----------------------------------------
func (h *FeeHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	collectorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fee, err := service.Register(c.UserContext(), h.DB, in.ToInput(collectorID))
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "fee tercatat", dto.ToFeeCollectionResponse(*fee))
}

// -----------------------------------------
// Update / koreksi (PATCH /fees/:id)
// -----------------------------------------
func (h *FeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.UpdateFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	performedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fee, err := service.Update(c.UserContext(), h.DB, id, in.ToPatch(), performedBy)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "koreksi tersimpan", dto.ToFeeCollectionResponse(*fee))
}

// -----------------------------------------
// Soft delete (DELETE /fees/:id)
// -----------------------------------------
func (h *FeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	fee, err := service.SoftDelete(c.UserContext(), h.DB, id)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "fee dihapus (soft delete)", dto.ToFeeCollectionResponse(*fee))
}

// -----------------------------------------
// Reverse & delete (POST /fees/:id/reverse)
// -----------------------------------------
func (h *FeeHandler) Reverse(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	performedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	fee, err := service.ReverseAndDelete(c.UserContext(), h.DB, id, performedBy)
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "fee dibatalkan & dihapus", dto.ToFeeCollectionResponse(*fee))
}

// -----------------------------------------
// Pelunasan admission (POST /fees/pay-admission)
// -----------------------------------------
func (h *FeeHandler) PayAdmission(c *fiber.Ctx) error {
	var in dto.PayAdmissionDueRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonValidationError(c, err)
	}

	collectorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fee, err := service.PayAdmissionDue(c.UserContext(), h.DB, service.AdmissionPaymentInput{
		StudentID:      in.FeeStudentID,
		ReceivedAmount: in.FeeReceivedAmount,
		PaymentMethod:  in.FeePaymentMethod,
		CollectorID:    collectorID,
	})
	if err != nil {
		return jsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "pelunasan admission tercatat", dto.ToFeeCollectionResponse(*fee))
}

// -----------------------------------------
// List (GET /fees)
// Query filters (opsional): student_id, session_id, fee_type, status,
// month, year, date_from, date_to, include_deleted, page, per_page
// -----------------------------------------
func (h *FeeHandler) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.FeeCollection{})
	if !strings.EqualFold(c.Query("include_deleted"), "true") {
		q = q.Where("fee_collection_is_deleted = ?", false)
	}
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("fee_collection_student_id = ?", id)
		}
	}
	if v := c.Query("session_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("fee_collection_session_id = ?", id)
		}
	}
	if v := c.Query("fee_type"); v != "" {
		q = q.Where("fee_collection_fee_type = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("fee_collection_payment_status = ?", v)
	}
	if v := c.QueryInt("month"); v > 0 {
		q = q.Where("fee_collection_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("fee_collection_year = ?", v)
	}
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("fee_collection_created_at >= ?", t)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("fee_collection_created_at <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.FeeCollection
	if err := q.
		Order(buildFeeOrderClause(c)).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToFeeCollectionResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// Detail (GET /fees/:id)
// -----------------------------------------
func (h *FeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.FeeCollection
	if err := h.DB.First(&m, "fee_collection_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "fee record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeCollectionResponse(m))
}

func buildFeeOrderClause(c *fiber.Ctx) string {
	// whitelist sortable keys -> kolom fisik
	allowed := map[string]string{
		"created_at": "fee_collection_created_at",
		"updated_at": "fee_collection_updated_at",
		"amount":     "fee_collection_received_amount_idr",
		"status":     "fee_collection_payment_status",
		"receipt_no": "fee_collection_receipt_no",
	}
	col, ok := allowed[strings.ToLower(c.Query("sort_by"))]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(c.Query("order"), "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}
