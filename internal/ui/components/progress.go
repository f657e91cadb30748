package components

import (
	"fmt"
	"strings"

	"github.com/pkritika/cortex/internal/ui/theme"
)

// ProgressBar renders "label [████░░░░] n/total".
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

func (p ProgressBar) View() string {
	width := max(p.Width, 4)
	filled := 0
	if p.Total > 0 {
		filled = min(width*p.Done/p.Total, width)
	}

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled)))
	b.WriteString(theme.Dimmed.Render(fmt.Sprintf("  %d/%d", p.Done, p.Total)))
	return b.String()
}
