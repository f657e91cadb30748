// Package api exposes the platform over HTTP with fiber.
package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pkritika/cortex/internal/auth"
	"github.com/pkritika/cortex/internal/catalog"
	"github.com/pkritika/cortex/internal/flashcards"
	"github.com/pkritika/cortex/internal/practice"
	"github.com/pkritika/cortex/internal/store"
)

const banner = "Server is running. Please visit <a href=\"http://localhost:5173\">http://localhost:5173</a> to view the app."

// Deps are the services the handlers call into.
type Deps struct {
	Catalog    *catalog.Catalog
	Practice   *practice.Service
	Flashcards *flashcards.Deck
	Store      store.Store
	Auth       *auth.Service
	Logger     *slog.Logger
}

// Options tune the HTTP layer.
type Options struct {
	// RateLimit caps POST requests per client IP per minute. Zero disables it.
	RateLimit int

	// AccessLog enables fiber's request logger.
	AccessLog bool

	// Now and Location fix "today" for streaks. Defaults: time.Now, time.Local.
	Now      func() time.Time
	Location *time.Location
}

// Server owns the fiber app.
type Server struct {
	app  *fiber.App
	deps Deps
	now  func() time.Time
	loc  *time.Location
	log  *slog.Logger
}

func New(deps Deps, opts Options) *Server {
	s := &Server{deps: deps, now: opts.Now, loc: opts.Location, log: deps.Logger}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:               "Cortex",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowCredentials: true,
	}))
	if opts.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Next:       func(c *fiber.Ctx) bool { return c.Method() != fiber.MethodPost },
			Max:        opts.RateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return message(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
			},
		}))
	}

	s.app = app
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString(banner)
	})
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")
	api.Post("/login", s.handleLogin)
	api.Post("/register", s.handleRegister)
	api.Get("/me", s.handleMe)

	api.Get("/courses", s.handleCourses)
	api.Get("/courses/:id", s.handleCourse)

	api.Get("/practice/:subject", s.handlePractice)

	// "all" must be registered before the :subject wildcard.
	api.Get("/flashcards/all", s.handleAllFlashcards)
	api.Get("/flashcards/:subject", s.handleFlashcards)

	api.Get("/results", s.handleListResults)
	api.Post("/results", s.handleCreateResult)
	api.Get("/stats/:userId", s.handleStats)

	api.Post("/progress", s.handleSaveProgress)
	api.Get("/progress/:userId", s.handleGetProgress)
}

// App returns the fiber app, e.g. for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func (s *Server) internalError(c *fiber.Ctx, err error) error {
	s.log.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
	return message(c, fiber.StatusInternalServerError, "internal error")
}

// handleError renders fiber errors (unknown routes, bad methods, panics) in
// the same {"message": ...} shape as handler errors.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return message(c, fe.Code, fe.Message)
	}
	return s.internalError(c, err)
}
