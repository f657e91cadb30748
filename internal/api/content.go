package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pkritika/cortex/internal/catalog"
	"github.com/pkritika/cortex/internal/flashcards"
	"github.com/pkritika/cortex/internal/practice"
)

func (s *Server) handleCourses(c *fiber.Ctx) error {
	return c.JSON(s.deps.Catalog.Courses())
}

func (s *Server) handleCourse(c *fiber.Ctx) error {
	course, err := s.deps.Catalog.Course(c.Params("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		return message(c, fiber.StatusNotFound, "Course not found")
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(course)
}

func (s *Server) handlePractice(c *fiber.Ctx) error {
	quiz, err := s.deps.Practice.PracticeTest(c.UserContext(), c.Params("subject"))
	if errors.Is(err, practice.ErrNotFound) {
		return message(c, fiber.StatusNotFound, "Practice test not found for this subject")
	}
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(quiz)
}

// maxAmount bounds ?amount= so one request cannot ask for millions of cards.
const maxAmount = 100

// amount reads ?amount=, falling back to def for missing, non-numeric or
// non-positive values.
func amount(c *fiber.Ctx, def int) int {
	n, err := strconv.Atoi(c.Query("amount"))
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxAmount)
}

func (s *Server) handleAllFlashcards(c *fiber.Ctx) error {
	n := amount(c, flashcards.DefaultAmountPerSubject)
	return c.JSON(s.deps.Flashcards.All(c.UserContext(), n))
}

func (s *Server) handleFlashcards(c *fiber.Ctx) error {
	n := amount(c, flashcards.DefaultAmount)
	return c.JSON(s.deps.Flashcards.ForSubject(c.UserContext(), c.Params("subject"), n))
}
