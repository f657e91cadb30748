package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pkritika/cortex/internal/store"
)

type progressRequest struct {
	UserID   string `json:"userId"`
	CourseID string `json:"courseId"`
	VideoID  string `json:"videoId"`
}

func (s *Server) handleSaveProgress(c *fiber.Ctx) error {
	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return message(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.UserID == "" || req.CourseID == "" || req.VideoID == "" {
		return message(c, fiber.StatusBadRequest, "Missing required fields")
	}

	p := store.Progress{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		VideoID:   req.VideoID,
		Timestamp: s.now().UTC(),
	}
	if err := s.deps.Store.SaveProgress(c.UserContext(), p); err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(p)
}

// handleGetProgress responds with the record, or JSON null when there is none.
func (s *Server) handleGetProgress(c *fiber.Ctx) error {
	p, err := s.deps.Store.GetProgress(c.UserContext(), c.Params("userId"))
	if err != nil {
		return s.internalError(c, err)
	}
	if p == nil {
		c.Type("json")
		return c.SendString("null")
	}
	return c.JSON(p)
}
