// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "madrasaku_backend/internals/features/school/students/controller"
)

// StudentAdminRoutes mendaftarkan endpoint read-only data siswa + saldo.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &studentController.StudentHandler{DB: db}

	students := admin.Group("/students")
	students.Get("/", h.List)
	students.Get("/:id", h.GetByID)
	students.Get("/:id/balance", h.GetBalance)
}
