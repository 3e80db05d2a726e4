package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestRenderNextSteps_WithFolder(t *testing.T) {
	out := RenderNextSteps(NextSteps{ChangeDir: "demo"})
	require.Contains(t, out, "✅ Project is ready!")
	require.Contains(t, out, "  cd demo\n")
	require.Contains(t, out, "  npm run dev\n")
	require.Equal(t, "\n✅ Project is ready!\n\n👉 To start:\n\n  cd demo\n  npm run dev\n", out)

	snaps.MatchSnapshot(t, out)
}

func TestRenderNextSteps_InPlace(t *testing.T) {
	out := RenderNextSteps(NextSteps{})
	require.NotContains(t, out, "cd ")
	require.Contains(t, out, "  npm run dev\n")

	snaps.MatchSnapshot(t, out)
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer

	Success(&buf, "SSH key (%s) found.", "id_ed25519")
	Warn(&buf, "SSH key not added.")
	Fail(&buf, "Still not authenticated. Aborting.")
	Info(&buf, "📁", "Creating project at: %s", "/tmp/demo")
	Hint(&buf, `ssh-keygen -t ed25519 -C "your-email@example.com"`)

	require.Equal(t, "✅ SSH key (id_ed25519) found.\n"+
		"⚠️  SSH key not added.\n"+
		"❌ Still not authenticated. Aborting.\n"+
		"📁 Creating project at: /tmp/demo\n"+
		"   ssh-keygen -t ed25519 -C \"your-email@example.com\"\n", buf.String())
}
