package tui

import (
	"fmt"
	"io"
)

// Success writes a "✅" status line
func Success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, SuccessStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Warn writes a "⚠️" status line
func Warn(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, WarnStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Fail writes a "❌" status line
func Fail(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, ErrorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Info writes a plain status line with the given emoji prefix
func Info(w io.Writer, prefix, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Hint writes an indented command the user can run themselves
func Hint(w io.Writer, command string) {
	_, _ = fmt.Fprintf(w, "   %s\n", CommandStyle.Render(command))
}
