package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n")
	b.WriteString(renderConfig(data))
	b.WriteString("\n")
	b.WriteString(renderSegments(data))
	b.WriteString("\n")
	b.WriteString(renderEnvironment(data))

	return b.String()
}

func renderHeader(data *Data) string {
	title := titleStyle.Render(fmt.Sprintf("compline %s", data.Version))
	dir := subtleStyle.Render(data.WorkingDir)
	return title + "  " + dir + "\n"
}

func renderConfig(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Configuration"))
	b.WriteString("\n")

	if data.ConfigPath == "" {
		b.WriteString(kv("config", subtleStyle.Render("built-in defaults")))
	} else {
		b.WriteString(kv("config", valueStyle.Render(data.ConfigPath)))
		if data.Valid {
			b.WriteString(kv("valid", successStyle.Render("yes")))
		} else {
			b.WriteString(kv("valid", errorStyle.Render("no")))
			for _, e := range data.Errors {
				b.WriteString("    " + errorStyle.Render("✗ "+e) + "\n")
			}
		}
	}

	b.WriteString(kv("separator", valueStyle.Render(fmt.Sprintf("%q", data.Separator))))
	b.WriteString(kv("matcher", valueStyle.Render(data.Matcher)))
	return b.String()
}

func renderSegments(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Sources"))
	b.WriteString("\n")
	b.WriteString(kv("command", renderSegment(data.Command)))
	b.WriteString(kv("arguments", renderSegment(data.Arguments)))
	return b.String()
}

func renderSegment(info SegmentInfo) string {
	if info.Kind == "none" {
		return subtleStyle.Render("none")
	}
	out := valueStyle.Render(info.Kind)
	if info.Detail != "" {
		out += " " + subtleStyle.Render(info.Detail)
	}
	return out
}

func renderEnvironment(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Environment"))
	b.WriteString("\n")

	home := data.Home
	if home == "" {
		home = subtleStyle.Render("not set")
	}
	b.WriteString(kv("home", valueStyle.Render(home)))
	b.WriteString(kv("path dirs", valueStyle.Render(fmt.Sprintf("%d", data.PathDirs))))
	return b.String()
}

func kv(key, value string) string {
	return fmt.Sprintf("  %s %s\n", keyStyle.Render(key+":"), value)
}
