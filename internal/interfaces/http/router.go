package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nmoreno/alquiler-api/internal/application/auth"
	"github.com/nmoreno/alquiler-api/internal/application/usecase"
	"github.com/nmoreno/alquiler-api/internal/domain/entity"
	"github.com/nmoreno/alquiler-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. El requisito de rol se declara por
// ruta con RequireRole, siempre después de AuthMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)
	authGroup.Post("/forgotPassword", authHandler.ForgotPassword)
	authGroup.Post("/resetPassword", authHandler.ResetPassword)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	app.Post("/register", authRequired, userHandler.Register)
	app.Get("/users", authRequired, adminOnly, userHandler.List)
	app.Get("/user/:id", authRequired, adminOnly, userHandler.GetByID)
	app.Put("/user/:id", authRequired, adminOnly, userHandler.Update)
	app.Delete("/user/:id", authRequired, adminOnly, userHandler.Delete)
	app.Get("/roles", userHandler.Roles)
}
