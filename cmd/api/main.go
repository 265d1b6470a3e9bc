package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/nmoreno/alquiler-api/internal/application/auth"
	"github.com/nmoreno/alquiler-api/internal/application/usecase"
	"github.com/nmoreno/alquiler-api/internal/infrastructure/mail"
	"github.com/nmoreno/alquiler-api/internal/infrastructure/memory"
	"github.com/nmoreno/alquiler-api/internal/infrastructure/postgres"
	httpRouter "github.com/nmoreno/alquiler-api/internal/interfaces/http"
	"github.com/nmoreno/alquiler-api/pkg/config"
	"github.com/nmoreno/alquiler-api/pkg/logger"
	"github.com/nmoreno/alquiler-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Sin secret no se puede firmar ni validar ningún token: error de
	// configuración, no de request.
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET no configurado")
	}
	if cfg.Reset.FrontURL == "" {
		log.Warn().Msg("FRONT_URL no configurada: los links de reset serán relativos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	hasher := password.NewHasher(0)
	resetTokens := memory.NewResetTokenStore(time.Duration(cfg.Reset.TTLMinutes) * time.Minute)

	var mailer appauth.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP no configurado: los mails se loguean en lugar de enviarse")
		mailer = mail.NewLogMailer(log)
	}

	authUC := appauth.NewAuthUseCase(userRepo, resetTokens, mailer, hasher, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Reset.FrontURL)
	userUC := usecase.NewUserUseCase(userRepo, hasher)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
