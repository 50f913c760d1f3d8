// Package tui binds the application state machine to a Bubble Tea program.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"network-ping/internal/app"
	"network-ping/internal/models"
)

const Title = "Network Ping"

// Recorder receives every applied outcome
type Recorder interface {
	Record(req models.Request, strategy string, outcome models.Outcome)
}

type focus int

const (
	focusInput focus = iota
	focusButton
)

// Model is the Bubble Tea model wrapping app.State
type Model struct {
	ctx      context.Context
	state    app.State
	invoker  models.Invoker
	interp   models.Interpreter
	recorder Recorder
	log      *zap.Logger

	input   textinput.Model
	focus   focus
	pending []app.Effect
}

// Option configures a Model
type Option func(*Model)

// WithRecorder hands every finished outcome to r
func WithRecorder(r Recorder) Option {
	return func(m *Model) { m.recorder = r }
}

// WithLogger sets the logger used for lifecycle events
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithContext sets the context passed to every invocation
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// New creates the model for profile p
func New(p app.Profile, inv models.Invoker, interp models.Interpreter, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter IP..."
	ti.CharLimit = 253
	ti.Width = 40
	ti.Focus()

	state, effects := app.Init(p)

	m := Model{
		ctx:     context.Background(),
		state:   state,
		invoker: inv,
		interp:  interp,
		log:     zap.NewNop(),
		input:   ti,
		pending: effects,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current application state
func (m Model) State() app.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(Title)}
	if m.state.Profile.Variant == app.VariantInteractive {
		cmds = append(cmds, textinput.Blink)
	}
	cmds = append(cmds, m.run(m.pending)...)
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		if m.recorder != nil {
			m.recorder.Record(msg.Request, m.interp.Name(), msg.Result.Outcome)
		}
		m.log.Debug("result arrived",
			zap.Uint64("seq", msg.Result.Seq),
			zap.Bool("ok", msg.Result.Outcome.OK()))
		return m.dispatch(msg.Result)
	}

	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		return m.dispatch(app.SubmitRequested{})

	case tea.KeyTab, tea.KeyShiftTab:
		if m.state.Profile.Variant == app.VariantInteractive {
			m.toggleFocus()
		}
		return m, nil

	case tea.KeySpace:
		if m.focus == focusButton {
			return m.dispatch(app.SubmitRequested{})
		}
	}

	return m.updateInput(msg)
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

// updateInput forwards msg to the text input and reports edits as InputChanged
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Profile.Variant != app.VariantInteractive {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		next, effectCmd := m.dispatch(app.InputChanged{Text: after})
		return next, tea.Batch(cmd, effectCmd)
	}
	return m, cmd
}

func (m Model) dispatch(msg app.Msg) (Model, tea.Cmd) {
	var effects []app.Effect
	m.state, effects = app.Update(m.state, msg)

	if _, ok := msg.(app.SubmitRequested); ok {
		m.log.Info("ping submitted",
			zap.Uint64("seq", m.state.LastSubmitted),
			zap.String("phase", m.state.Phase.String()))
	}
	return m, tea.Batch(m.run(effects)...)
}

// run turns effects into commands executed off the event loop
func (m Model) run(effects []app.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		invoke, ok := eff.(app.Invoke)
		if !ok {
			continue
		}
		ctx, inv, interp := m.ctx, m.invoker, m.interp
		cmds = append(cmds, func() tea.Msg {
			return resultMsg{
				Request: invoke.Request,
				Result:  app.Perform(ctx, inv, interp, invoke),
			}
		})
	}
	return cmds
}
