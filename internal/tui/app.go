// Package tui implements the interactive ask form and answer view.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"finchat/internal/chat"
	"finchat/internal/cli"
	"finchat/internal/config"
	"finchat/internal/prompt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// phase tracks which screen the app is on.
type phase int

const (
	phaseForm phase = iota
	phaseAsking
	phaseAnswer
)

// askValues backs the huh form fields.
type askValues struct {
	question string
	persona  string
	backend  string
	income   string
	optimize string
}

// answerMsg carries the completed round trip back into the update loop.
type answerMsg struct {
	req chat.Request
	res chat.Result
	err error
}

// Record is called after each completed exchange; the TUI itself stays
// storage-agnostic.
type Record func(req chat.Request, res chat.Result)

// App is the bubbletea model for the interactive chat.
type App struct {
	cfg    config.Config
	record Record

	phase   phase
	form    *huh.Form
	vals    askValues
	spinner spinner.Model

	req chat.Request
	res chat.Result
	err error

	width  int
	height int
}

// NewApp creates the TUI model.
func NewApp(cfg config.Config, record Record) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	a := App{
		cfg:     cfg,
		record:  record,
		spinner: sp,
	}
	a.resetForm()
	return a
}

// resetForm builds a fresh ask form seeded with config defaults.
func (a *App) resetForm() {
	a.vals = askValues{
		persona: a.cfg.General.DefaultPersona,
		backend: a.cfg.General.DefaultBackend,
	}
	a.form = newAskForm(&a.vals)
	a.phase = phaseForm
	a.err = nil
}

func newAskForm(v *askValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Ask your finance question").
				Placeholder("E.g., How should I budget ₹30,000/month as a student?").
				CharLimit(2000).
				Value(&v.question).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("please enter a question")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Persona / Tone").
				Options(
					huh.NewOption("student", string(prompt.PersonaStudent)),
					huh.NewOption("professional", string(prompt.PersonaProfessional)),
				).
				Value(&v.persona),
			huh.NewSelect[string]().
				Title("Primary backend").
				Options(
					huh.NewOption("Granite (Hugging Face Inference API)", "granite"),
					huh.NewOption("IBM Watson Assistant", "watson"),
				).
				Value(&v.backend),
			huh.NewInput().
				Title("Optional: monthly income").
				Placeholder("0").
				Value(&v.income).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					f, err := strconv.ParseFloat(s, 64)
					if err != nil || f < 0 {
						return fmt.Errorf("enter a non-negative number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Optimize for").
				Options(
					huh.NewOption("savings", "savings"),
					huh.NewOption("growth", "growth"),
					huh.NewOption("safety", "safety"),
				).
				Value(&v.optimize),
		),
	)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.phase == phaseForm && a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		}
		if a.phase == phaseAnswer {
			switch msg.String() {
			case "q", "esc":
				return a, tea.Quit
			case "n":
				a.resetForm()
				return a, a.form.Init()
			}
			return a, nil
		}

	case answerMsg:
		a.req = msg.req
		a.res = msg.res
		a.err = msg.err
		a.phase = phaseAnswer
		return a, nil

	case spinner.TickMsg:
		if a.phase == phaseAsking {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.phase == phaseForm {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		req, err := a.buildRequest()
		if err != nil {
			// Validation keeps this from happening; fall back to the form.
			a.resetForm()
			return a, a.form.Init()
		}
		a.req = req
		a.phase = phaseAsking
		return a, tea.Batch(a.spinner.Tick, a.askCmd(req))
	}

	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

// buildRequest converts the form values into a chat request.
func (a App) buildRequest() (chat.Request, error) {
	income := 0.0
	if s := strings.TrimSpace(a.vals.income); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return chat.Request{}, err
		}
		income = f
	}

	return chat.Request{
		Question:    strings.TrimSpace(a.vals.question),
		Persona:     prompt.Persona(a.vals.persona),
		Backend:     a.vals.backend,
		Income:      income,
		OptimizeFor: a.vals.optimize,
	}, nil
}

// askCmd runs the blocking round trip off the update loop.
func (a App) askCmd(req chat.Request) tea.Cmd {
	cfg := a.cfg
	record := a.record
	return func() tea.Msg {
		res, err := chat.Run(context.Background(), cfg, req)
		if err == nil && record != nil {
			record(req, res)
		}
		return answerMsg{req: req, res: res, err: err}
	}
}

// View implements tea.Model.
func (a App) View() string {
	switch a.phase {
	case phaseAsking:
		return fmt.Sprintf("\n  %s Generating response — this may take a few seconds.\n", a.spinner.View())

	case phaseAnswer:
		var b strings.Builder
		b.WriteString("\n")
		if a.err != nil {
			b.WriteString(cli.RenderAnswer("Error", a.err.Error()))
		} else {
			b.WriteString(cli.RenderAnswer(answerTitle(a.req.Backend), a.res.Answer))
			if a.res.BudgetSummary != "" {
				b.WriteString("\n")
				b.WriteString(cli.RenderBudget(a.res.BudgetSummary))
			}
		}
		b.WriteString("\n")
		b.WriteString(cli.RenderHint("n new question · q quit"))
		return b.String()

	default:
		return a.form.View()
	}
}

// answerTitle names the answer panel after the backend that produced it.
func answerTitle(backendName string) string {
	if backendName == "watson" {
		return "Watson Assistant response"
	}
	return "Granite (Hugging Face) response"
}
