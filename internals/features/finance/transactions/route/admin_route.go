// file: internals/features/finance/transactions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trxController "madrasaku_backend/internals/features/finance/transactions/controller"
)

// TransactionAdminRoutes mendaftarkan endpoint transaction log (read + override admin).
func TransactionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &trxController.TransactionLogHandler{DB: db}

	trx := admin.Group("/transactions")
	trx.Get("/", h.List)
	trx.Get("/:id", h.GetByID)
	trx.Delete("/:id", h.Delete)
}
