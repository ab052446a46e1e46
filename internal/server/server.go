package server

import (
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/template/html/v2"

	"pasteboard/internal/auth"
	"pasteboard/internal/config"
	"pasteboard/internal/database"
	"pasteboard/internal/database/repositories"
	"pasteboard/internal/notes"
	"pasteboard/static"
	"pasteboard/views"
)

type FiberServer struct {
	*fiber.App

	db    database.Service
	cfg   *config.Config
	auth  *auth.Service
	notes *notes.Service
	log   *slog.Logger
}

func New(cfg *config.Config, db database.Service, log *slog.Logger) *FiberServer {
	engine := html.NewFileSystem(http.FS(views.EmbeddedFS()), ".html")

	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: "pasteboard",
			AppName:      "pasteboard",
			Views:        engine,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				code := fiber.StatusInternalServerError
				if e, ok := err.(*fiber.Error); ok {
					code = e.Code
				}
				msg := err.Error()
				if code >= fiber.StatusInternalServerError {
					log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
					msg = "Database error"
				}
				return c.Status(code).JSON(fiber.Map{"error": msg})
			},
		}),
		db:    db,
		cfg:   cfg,
		auth:  auth.NewService(repositories.NewAccountRepository(db.DB()), repositories.NewSessionRepository(db.DB()), cfg.BcryptCost, cfg.SessionMaxAge),
		notes: notes.NewService(repositories.NewNoteRepository(db.DB())),
		log:   log,
	}

	server.App.Use(favicon.New())
	server.App.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-ID",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	server.App.Use(logger.New())
	server.App.Use(pprof.New())
	server.App.Use(encryptcookie.New(encryptcookie.Config{
		Key: cookieKey(cfg.SessionSecret),
	}))
	server.App.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(static.EmbeddedFS()),
	}))

	return server
}

// cookieKey derives the 32-byte cookie cipher key from the configured
// session secret.
func cookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
