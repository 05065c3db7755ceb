package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/construmart/construmart-api/docs"
	"github.com/construmart/construmart-api/internal/application/auth"
	"github.com/construmart/construmart-api/internal/application/onboarding"
	"github.com/construmart/construmart-api/internal/application/usecase"
	"github.com/construmart/construmart-api/internal/infrastructure/email"
	"github.com/construmart/construmart-api/internal/infrastructure/postgres"
	httpRouter "github.com/construmart/construmart-api/internal/interfaces/http"
	"github.com/construmart/construmart-api/pkg/config"
	"github.com/construmart/construmart-api/pkg/credentials"
	"github.com/construmart/construmart-api/pkg/logger"
	"github.com/construmart/construmart-api/pkg/otp"
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

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	codeRepo := postgres.NewEncryptedCodeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hasher := credentials.NewHasher(cfg.Hash.Iterations)
	issuer := otp.NewIssuer(cfg.OTP.Digits, time.Duration(cfg.OTP.TTLMinutes)*time.Minute)
	notifier := email.NewSMTPNotifier(cfg.SMTP)

	onboardingUC := onboarding.NewUseCase(
		userRepo, codeRepo, txRunner, hasher, issuer, notifier,
		onboarding.Sender{Address: cfg.SMTP.FromAddress, Name: cfg.SMTP.FromName},
		log,
	)
	authUC := auth.NewAuthUseCase(userRepo, customerRepo, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tagUC := usecase.NewTagUseCase(tagRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// La especificación va embebida en el binario: el arranque no depende
	// de encontrar docs/swagger.json en el directorio de trabajo.
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "Construmart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OnboardingUC: onboardingUC,
		AuthUC:       authUC,
		TagUC:        tagUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		JWTSecret:    cfg.JWT.Secret,
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
