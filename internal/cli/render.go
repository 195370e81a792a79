package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/pipseek/pkg/integrations/pypi"
)

// maxDescription caps the summary line so panels keep a stable height in
// narrow terminals.
const maxDescription = 96

// renderRecord formats one package as a short panel. The panel is plain
// multi-line text, so the interactive pager can split it into scrollable
// lines and plain mode can print it directly.
func renderRecord(rec pypi.Record) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(rec.Name))
	b.WriteString(" ")
	b.WriteString(StyleHighlight.Render(rec.Version))
	if rec.Metrics != nil {
		b.WriteString(StyleDim.Render(" · "))
		b.WriteString(StyleNumber.Render("★ " + formatInt(rec.Metrics.Stars)))
		b.WriteString(StyleDim.Render(" · "))
		b.WriteString(StyleNumber.Render(formatInt(rec.Metrics.Forks) + " forks"))
	}
	b.WriteString("\n")

	b.WriteString("  ")
	b.WriteString(StyleValue.Render(truncate(rec.Description, maxDescription)))
	b.WriteString("\n")

	if rec.Homepage != pypi.NoValue {
		b.WriteString("  ")
		b.WriteString(StyleDim.Render(iconArrow))
		b.WriteString(" ")
		b.WriteString(StyleLink.Render(rec.Homepage))
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(styleMeta.Render(fmt.Sprintf("%s · %s · ", rec.Author, rec.UploadTime)))
	b.WriteString(styleCommand.Render("pip install " + rec.Name))

	return b.String()
}

// recordLines renders records as one flat list of lines with a blank line
// between panels, ready for line-offset scrolling.
func recordLines(records []pypi.Record) []string {
	var lines []string
	for i, rec := range records {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(renderRecord(rec), "\n")...)
	}
	return lines
}

// truncate shortens s to at most max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// formatInt renders n with thousands separators (e.g., 67421 -> "67,421").
func formatInt(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
