package prompt

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/kobonostudio/create-webflow/internal/tui"
)

// HuhPrompter implements Prompter with one huh form per question
type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	theme      *huh.Theme
	accessible bool
}

// HuhOption configures a HuhPrompter
type HuhOption func(*HuhPrompter)

// WithIO sets the reader and writer the forms run on
func WithIO(in io.Reader, out io.Writer) HuhOption {
	return func(p *HuhPrompter) {
		p.in = in
		p.out = out
	}
}

// WithAccessible switches huh to line-based prompts for screen readers and
// non-TTY sessions
func WithAccessible(enabled bool) HuhOption {
	return func(p *HuhPrompter) {
		p.accessible = enabled
	}
}

// NewHuhPrompter constructs a HuhPrompter with the project huh theme.
func NewHuhPrompter(opts ...HuhOption) *HuhPrompter {
	p := &HuhPrompter{
		theme: tui.NewHuhTheme(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *HuhPrompter) Input(q Input) (string, error) {
	value := q.Default

	field := huh.NewInput().
		Title(q.Message).
		Value(&value)
	if q.Validate != nil {
		field = field.Validate(q.Validate)
	}

	if err := p.run(field); err != nil {
		return "", err
	}

	return value, nil
}

func (p *HuhPrompter) Confirm(q Confirm) (bool, error) {
	value := q.Default

	field := huh.NewConfirm().
		Title(q.Message).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(field); err != nil {
		return false, err
	}

	return value, nil
}

func (p *HuhPrompter) Select(q Select) (string, error) {
	value := q.Default

	opts := make([]huh.Option[string], 0, len(q.Options))
	for _, opt := range q.Options {
		opts = append(opts, huh.NewOption(opt.Label, opt.Value).Selected(opt.Value == q.Default))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)

	field := huh.NewSelect[string]().
		Title(q.Message).
		Options(opts...).
		Value(&value)

	if err := p.runWithKeyMap(field, keyMap); err != nil {
		return "", err
	}

	return value, nil
}

func (p *HuhPrompter) run(field huh.Field) error {
	return p.runWithKeyMap(field, huh.NewDefaultKeyMap())
}

func (p *HuhPrompter) runWithKeyMap(field huh.Field, keyMap *huh.KeyMap) error {
	var programOpts []tea.ProgramOption
	if p.in != nil {
		programOpts = append(programOpts, tea.WithInput(p.in))
	}
	if p.out != nil {
		programOpts = append(programOpts, tea.WithOutput(p.out))
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithShowHelp(false).
		WithAccessible(p.accessible).
		WithKeyMap(keyMap).
		WithProgramOptions(programOpts...)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}

	return nil
}
