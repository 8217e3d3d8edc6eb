// file: internals/features/finance/expenses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseController "madrasaku_backend/internals/features/finance/expenses/controller"
)

// ExpenseAdminRoutes mendaftarkan endpoint pengeluaran operasional.
func ExpenseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &expenseController.ExpenseHandler{DB: db}

	expenses := admin.Group("/expenses")
	expenses.Post("/", h.Create)
	expenses.Get("/", h.List)
	expenses.Get("/:id", h.GetByID)
}
