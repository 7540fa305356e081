package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case strings.TrimSpace(line) == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	if width > 0 {
		line = truncateToWidth(line, width)
	}

	return style.Render(line)
}

// renderDiff colors a whole unified diff; width <= 0 disables truncation.
func renderDiff(diff string, width int) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, renderDiffLine(line, width))
	}

	return strings.Join(rendered, "\n")
}

func statusStyle(ok bool) lipgloss.Style {
	if ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
}
