package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/pkritika/cortex/internal/gamification"
	"github.com/pkritika/cortex/internal/store"
)

const resultSchema = `{
	"type": "object",
	"required": ["userId", "subject", "score"],
	"properties": {
		"userId": {"type": "string", "minLength": 1},
		"subject": {"type": "string", "minLength": 1},
		"score": {"type": "integer", "minimum": 0},
		"totalQuestions": {"type": "integer", "minimum": 0},
		"timestamp": {"type": ["string", "null"]},
		"categoryBreakdown": {
			"type": ["object", "null"],
			"additionalProperties": {
				"type": "object",
				"properties": {
					"total": {"type": "integer", "minimum": 0},
					"correct": {"type": "integer", "minimum": 0}
				}
			}
		}
	}
}`

var resultValidator = mustCompile("schema://result.json", resultSchema)

func mustCompile(name, src string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("api: parse schema %s: %v", name, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("api: add schema %s: %v", name, err))
	}
	return c.MustCompile(name)
}

// missingRequired reports whether any key is absent, null or an empty string.
func missingRequired(doc any, keys ...string) bool {
	m, ok := doc.(map[string]any)
	if !ok {
		return true
	}
	for _, k := range keys {
		switch v := m[k].(type) {
		case nil:
			return true
		case string:
			if v == "" {
				return true
			}
		}
	}
	return false
}

type resultRequest struct {
	UserID            string                         `json:"userId"`
	Subject           string                         `json:"subject"`
	Score             int                            `json:"score"`
	TotalQuestions    int                            `json:"totalQuestions"`
	Timestamp         *string                        `json:"timestamp"`
	CategoryBreakdown map[string]store.CategoryTally `json:"categoryBreakdown"`
}

func (s *Server) handleCreateResult(c *fiber.Ctx) error {
	body := c.Body()
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return message(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if missingRequired(doc, "userId", "subject", "score") {
		return message(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if err := resultValidator.Validate(doc); err != nil {
		return message(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var req resultRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return message(c, fiber.StatusBadRequest, "Invalid request body")
	}

	r := store.TestResult{
		UserID:            req.UserID,
		Subject:           req.Subject,
		Score:             req.Score,
		TotalQuestions:    req.TotalQuestions,
		CategoryBreakdown: req.CategoryBreakdown,
	}
	// null, "" and absent all mean "now".
	r.Timestamp = s.now().UTC()
	if req.Timestamp != nil && *req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, *req.Timestamp)
		if err != nil {
			return message(c, fiber.StatusBadRequest, "Invalid request body")
		}
		r.Timestamp = ts.UTC()
	}

	if err := s.deps.Store.AppendResult(c.UserContext(), r); err != nil {
		return s.internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// handleListResults returns one user's results newest first, or every
// result in insertion order when no userId is given.
func (s *Server) handleListResults(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		all, err := s.deps.Store.AllResults(c.UserContext())
		if err != nil {
			return s.internalError(c, err)
		}
		return c.JSON(all)
	}

	results, err := s.deps.Store.ResultsForUser(c.UserContext(), userID)
	if err != nil {
		return s.internalError(c, err)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
	return c.JSON(results)
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	results, err := s.deps.Store.ResultsForUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(gamification.Calculate(results, s.now(), s.loc))
}
