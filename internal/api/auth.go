package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pkritika/cortex/internal/auth"
)

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	u, err := s.deps.Auth.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return message(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(u)
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Missing required fields")
	}
	u, err := s.deps.Auth.Register(req.Name, req.Email, req.Password)
	if errors.Is(err, auth.ErrMissingFields) {
		return message(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(u)
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	u, err := s.deps.Auth.Parse(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return message(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(u)
}
