package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-api/internal/application/auth"
	appcustomer "github.com/jhoicas/crm-api/internal/application/customer"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *appcustomer.CustomerUseCase
	UserRepo   repository.UserRepository
	JWTSecret  string
	JWTExp     int // horas
	AppEnv     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExp, deps.AppEnv)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Customers (protegido: toda operación pasa por el verificador de sesión)
	customers := api.Group("/customers", AuthMiddleware(deps.JWTSecret, deps.UserRepo))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
}
