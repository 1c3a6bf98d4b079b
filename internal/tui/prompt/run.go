package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mingle-app/mingle/internal/cli"
	"github.com/mingle-app/mingle/internal/plan"
	"github.com/mingle-app/mingle/internal/upgrade"
)

// Outcome is how a prompt session ended.
type Outcome int

const (
	OutcomeDismissed Outcome = iota
	OutcomeRedirected
)

func (o Outcome) String() string {
	if o == OutcomeRedirected {
		return "redirected"
	}
	return "dismissed"
}

// Result is returned when the prompt session ends.
type Result struct {
	Outcome Outcome
	Tier    plan.Tier
	URL     string
}

// Options configure Show.
type Options struct {
	Checkout CheckoutCreator
	Navigate Navigator
	Logger   *slog.Logger
	// Plain forces the line-based prompt even on a terminal.
	Plain bool
	// Input and Output are used by the line-based prompt. The TUI always
	// runs on the terminal.
	Input  io.Reader
	Output io.Writer
}

// Show renders the prompt driven by store until the user dismisses it or is
// sent to checkout. If the store is closed it returns immediately. When
// stdout is not a terminal it falls back to the line-based prompt.
func Show(ctx context.Context, store *upgrade.Store, opts Options) (Result, error) {
	if !store.State().Visible {
		return Result{}, nil
	}
	if opts.Plain || !isTTY() {
		p := cli.DefaultPrompter()
		if opts.Input != nil {
			p.In = opts.Input
		}
		if opts.Output != nil {
			p.Out = opts.Output
		}
		return RunPlain(ctx, store, p, opts)
	}
	return runTUI(ctx, store, opts)
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI(ctx context.Context, store *upgrade.Store, opts Options) (Result, error) {
	updates := store.Subscribe()
	defer store.Unsubscribe(updates)

	a := newApp(store, updates, opts)

	final, err := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return Result{}, fmt.Errorf("TUI error: %w", err)
	}
	fa := final.(app)
	fa.prompt.Unmount()
	return fa.result, nil
}

// stateMsg carries a new store snapshot into the program.
type stateMsg upgrade.State

func waitForState(ch <-chan upgrade.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg(st)
	}
}

// app wires the store to the prompt: store state becomes props and dismissal
// closes the store.
type app struct {
	store   *upgrade.Store
	updates <-chan upgrade.State
	prompt  Model
	result  Result
}

func newApp(store *upgrade.Store, updates <-chan upgrade.State, opts Options) app {
	return app{
		store:   store,
		updates: updates,
		prompt:  New(propsFor(store.State(), store.Close), opts.Checkout, opts.Navigate, opts.Logger),
	}
}

func propsFor(st upgrade.State, onClose func()) Props {
	return Props{
		Visible:     st.Visible,
		OnClose:     onClose,
		CurrentPlan: st.CurrentPlan,
		LimitKind:   st.LimitKind,
		LimitCount:  st.LimitCount,
	}
}

func (a app) Init() tea.Cmd {
	return waitForState(a.updates)
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		a.prompt.SetProps(propsFor(upgrade.State(msg), a.store.Close))
		if !msg.Visible {
			a.prompt.Unmount()
			return a, tea.Quit
		}
		return a, waitForState(a.updates)

	case RedirectedMsg:
		a.result = Result{Outcome: OutcomeRedirected, Tier: msg.Tier, URL: msg.URL}
		a.prompt.Unmount()
		return a, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
			a.store.Close()
			a.prompt.Unmount()
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return a.prompt.View()
}
