// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "madrasaku_backend/internals/middlewares/auth"

	expenseRoute "madrasaku_backend/internals/features/finance/expenses/route"
	feeRoute "madrasaku_backend/internals/features/finance/fees/route"
	trxRoute "madrasaku_backend/internals/features/finance/transactions/route"
	studentRoute "madrasaku_backend/internals/features/school/students/route"
)

// SetupRoutes memasang seluruh route aplikasi.
// Prefix /api/a = area admin/bendahara (wajib login).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	feeRoute.FeeAdminRoutes(admin, db)
	trxRoute.TransactionAdminRoutes(admin, db)
	expenseRoute.ExpenseAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
}
