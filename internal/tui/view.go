package tui

import (
	"strings"
)

// NextSteps holds what the final instructions mention
type NextSteps struct {
	// ChangeDir is the folder to cd into; empty when installing in place
	ChangeDir string
}

// RenderBanner renders the greeting printed before the interview
func RenderBanner() string {
	return "\n" + TitleStyle.Render("🚀 Create a new webflow project") + "\n"
}

// RenderNextSteps renders the summary printed after a successful install.
func RenderNextSteps(steps NextSteps) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(SuccessStyle.Render("✅ Project is ready!"))
	b.WriteString("\n\n")
	b.WriteString("👉 To start:\n\n")
	if steps.ChangeDir != "" {
		b.WriteString("  " + CommandStyle.Render("cd "+steps.ChangeDir) + "\n")
	}
	b.WriteString("  " + CommandStyle.Render("npm run dev") + "\n")

	return b.String()
}
