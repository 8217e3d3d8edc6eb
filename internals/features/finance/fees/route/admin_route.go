// file: internals/features/finance/fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "madrasaku_backend/internals/features/finance/fees/controller"
)

// FeeAdminRoutes mendaftarkan endpoint pencatatan fee (area admin/bendahara).
func FeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &feeController.FeeHandler{DB: db}

	fees := admin.Group("/fees")
	fees.Post("/", h.Register)
	fees.Post("/pay-admission", h.PayAdmission)
	fees.Get("/", h.List)
	fees.Get("/:id", h.GetByID)
	fees.Patch("/:id", h.Update)
	fees.Post("/:id/reverse", h.Reverse)
	fees.Delete("/:id", h.Delete)
}
