package practice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkritika/cortex/internal/catalog"
	"github.com/pkritika/cortex/internal/question"
	"github.com/pkritika/cortex/internal/random"
)

func fixedClock() time.Time { return time.UnixMilli(1700000000000) }

func newService(t *testing.T, sources Sources, fallback FallbackTests) *Service {
	t.Helper()
	s, err := NewService(sources, fallback, WithClock(fixedClock))
	require.NoError(t, err)
	return s
}

func TestNewService_RequiresEverySubject(t *testing.T) {
	sources := LocalSources(random.Seeded(1))
	delete(sources, question.SubjectEconomics)

	_, err := NewService(sources, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "economics")
}

func TestQuestions_Dispatch(t *testing.T) {
	s := newService(t, LocalSources(random.Seeded(2)), nil)
	ctx := context.Background()

	prefixes := map[string]string{
		"science":   "sci-",
		"history":   "hist-",
		"computing": "comp-",
		"economics": "econ-",
	}
	for subject, prefix := range prefixes {
		qs := s.Questions(ctx, subject, 4)
		require.Len(t, qs, 4, subject)
		for _, q := range qs {
			assert.True(t, strings.HasPrefix(q.ID, prefix), "%s: %s", subject, q.ID)
		}
	}

	math := s.Questions(ctx, "MATH", 3)
	require.Len(t, math, 3)
	for _, q := range math {
		assert.True(t, strings.HasPrefix(q.Category, "Math: "))
	}
}

func TestQuestions_UnknownSubjectIsEmpty(t *testing.T) {
	s := newService(t, LocalSources(random.Seeded(3)), nil)
	qs := s.Questions(context.Background(), "astrology", 5)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestPracticeTest_Generated(t *testing.T) {
	s := newService(t, LocalSources(random.Seeded(4)), catalog.MustLoad())

	quiz, err := s.PracticeTest(context.Background(), "history")
	require.NoError(t, err)
	assert.Equal(t, "pt-history-1700000000000", quiz.ID)
	assert.Equal(t, "History Practice Test", quiz.Title)
	assert.Len(t, quiz.Questions, TestSize)
}

func TestPracticeTest_FallsBackToStaticTest(t *testing.T) {
	sources := LocalSources(random.Seeded(5))
	sources[question.SubjectScience] = SourceFunc(func(context.Context, int) []question.Question { return nil })
	s := newService(t, sources, catalog.MustLoad())

	quiz, err := s.PracticeTest(context.Background(), "science")
	require.NoError(t, err)
	assert.Equal(t, "pt-science", quiz.ID)
	assert.Len(t, quiz.Questions, 2)
}

func TestPracticeTest_NotFound(t *testing.T) {
	sources := LocalSources(random.Seeded(6))
	sources[question.SubjectMath] = SourceFunc(func(context.Context, int) []question.Question { return nil })
	s := newService(t, sources, nil)

	_, err := s.PracticeTest(context.Background(), "math")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.PracticeTest(context.Background(), "art")
	assert.True(t, errors.Is(err, ErrNotFound))
}
