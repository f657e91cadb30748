// Package layout composes header, content and footer into a frame.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pkritika/cortex/internal/ui/theme"
)

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// RenderHeader shows the app name, a centred title and the running score.
func RenderHeader(title string, correct, answered, width int) string {
	left := theme.Title.Render("  Cortex")
	center := theme.Body.Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("✔ %d/%d", correct, answered))

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, theme.Body.Bold(true).Render(h.Key)+" "+theme.Dimmed.Render(h.Description))
	}
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, padding content to fill
// height when it is known.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().Width(width).Padding(1, 2)
	if height > 0 {
		h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
		body = body.Height(h)
	}
	return header + "\n" + body.Render(content) + "\n" + footer
}
