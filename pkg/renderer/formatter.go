package renderer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // added
	colorRed   = lipgloss.Color("167") // removed
	colorDim   = lipgloss.Color("240") // separators
)

// Format renders a diff result for display
func (r *Renderer) Format(result *Result, format string) (string, error) {
	switch format {
	case "text", "":
		return result.String(), nil

	case "color":
		return r.formatColor(result), nil

	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, color, json)", format)
	}
}

// formatColor renders the text report with removed lines in red and added
// lines in green. Without a colour capable profile the output equals the
// plain text report.
func (r *Renderer) formatColor(result *Result) string {
	added := r.styles.NewStyle().Foreground(colorGreen)
	removed := r.styles.NewStyle().Foreground(colorRed)
	separator := r.styles.NewStyle().Foreground(colorDim)

	var buf strings.Builder
	for _, h := range result.Hunks {
		for _, l := range h.Lines {
			switch l.Tag {
			case TagAdded:
				buf.WriteString(added.Render(l.String()))
			case TagRemoved:
				buf.WriteString(removed.Render(l.String()))
			default:
				buf.WriteString(l.String())
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(separator.Render(HunkSeparator))
		buf.WriteByte('\n')
	}
	return buf.String()
}
