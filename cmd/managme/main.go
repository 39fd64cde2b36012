package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mpradela/managme/internal/api"
	"github.com/mpradela/managme/internal/cli"
	"github.com/mpradela/managme/internal/db"
	"github.com/mpradela/managme/internal/i18n"
	"github.com/mpradela/managme/internal/services"
)

func main() {
	resetLogin := flag.String("reset-password", "", "reset the password of the given login and print a temporary one")
	flag.Parse()

	dbPath := getEnv("DB_PATH", filepath.Join("data", "managme.db"))

	if *resetLogin != "" {
		if err := cli.RunResetPasswordCommand(dbPath, *resetLogin); err != nil {
			log.Fatalf("password reset failed: %v", err)
		}
		return
	}

	port := getEnv("PORT", "3000")
	secretKey := getEnv("JWT_SECRET", "change_me_in_production")
	clientURL := getEnv("CLIENT_URL", "http://localhost:5173")
	uploadsDir := getEnv("UPLOADS_DIR", "uploads")
	defaultLanguage := getEnv("DEFAULT_LANGUAGE", "pl")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	i18nManager, err := i18n.NewManager(defaultLanguage, filepath.Join("internal", "i18n", "locales"))
	if err != nil {
		log.Fatalf("i18n init failed: %v", err)
	}

	mailer := services.NewMailService(services.MailConfig{
		Enabled: getEnv("SMTP_HOST", "") != "",
		Host:    getEnv("SMTP_HOST", ""),
		Port:    getEnv("SMTP_PORT", "587"),
		User:    getEnv("SMTP_USER", ""),
		Pass:    getEnv("SMTP_PASS", ""),
		From:    getEnv("SMTP_FROM", "no-reply@managme.local"),
	})

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Fatalf("uploads dir init failed: %v", err)
	}

	handler, err := api.NewHandler(database, api.Config{
		SecretKey:          secretKey,
		PrimaryAdminLogin:  getEnv("PRIMARY_ADMIN_LOGIN", "milosz.pradela1@gmail.com"),
		ClientURL:          clientURL,
		UploadsDir:         uploadsDir,
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
	}, i18nManager, mailer)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "ManagMe",
		DisableStartupMessage: true,
		BodyLimit:             8 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: clientURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/uploads", uploadsDir)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("ManagMe listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
