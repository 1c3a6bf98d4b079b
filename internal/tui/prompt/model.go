// Package prompt is the upgrade prompt shown when a user hits a daily limit.
package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mingle-app/mingle/internal/api"
	"github.com/mingle-app/mingle/internal/plan"
	"github.com/mingle-app/mingle/internal/tui"
)

// Inline error messages.
const (
	MsgNoCheckoutURL = "Failed to start checkout. Please try again."
	MsgCheckoutError = "Something went wrong. Please try again."
)

const modalWidth = 56

// CheckoutCreator creates a provider-hosted checkout session.
type CheckoutCreator interface {
	CreateCheckout(ctx context.Context, tier plan.Tier) (*api.CheckoutSession, error)
}

// Props are supplied by whoever renders the prompt. The model never reads
// the upgrade store itself.
type Props struct {
	Visible     bool
	OnClose     func()
	CurrentPlan plan.Plan
	LimitKind   plan.LimitKind
	LimitCount  int
}

// RedirectedMsg is emitted after the browser was sent to the checkout URL.
type RedirectedMsg struct {
	Tier plan.Tier
	URL  string
}

type checkoutResultMsg struct {
	seq     int
	tier    plan.Tier
	session *api.CheckoutSession
	err     error
}

type keyMap struct {
	Basic   key.Binding
	Premium key.Binding
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Dismiss key.Binding
}

var keys = keyMap{
	Basic:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "basic")),
	Premium: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "premium")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "navigate")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Dismiss: key.NewBinding(key.WithKeys("esc", "m", "q"), key.WithHelp("esc", "maybe later")),
}

// Model is the upgrade prompt component.
type Model struct {
	props    Props
	checkout CheckoutCreator
	navigate Navigator
	logger   *slog.Logger
	spinner  spinner.Model

	cursor  int
	loading plan.Tier // tier whose checkout is in flight, empty when idle
	errMsg  string

	seq     int
	cancel  context.CancelFunc
	mounted bool
}

// New creates a mounted prompt. A nil navigate opens the system browser.
func New(props Props, checkout CheckoutCreator, navigate Navigator, logger *slog.Logger) Model {
	if navigate == nil {
		navigate = OpenBrowser
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tui.Selected

	return Model{
		props:    props,
		checkout: checkout,
		navigate: navigate,
		logger:   logger,
		spinner:  sp,
		mounted:  true,
	}
}

// SetProps replaces the props, e.g. after the driving state changed.
func (m *Model) SetProps(p Props) {
	m.props = p
	if m.cursor > len(m.options()) {
		m.cursor = 0
	}
}

// Unmount cancels any checkout in flight. Results arriving later are dropped.
func (m *Model) Unmount() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = ""
	m.mounted = false
}

// Loading returns the tier being checked out, or "" when idle.
func (m Model) Loading() plan.Tier { return m.loading }

// Err returns the inline error message, if any.
func (m Model) Err() string { return m.errMsg }

// options returns the tiers shown for the current plan.
func (m Model) options() []plan.Tier {
	return m.props.CurrentPlan.Offers()
}

func (m Model) offers(tier plan.Tier) bool {
	for _, t := range m.options() {
		if t == tier {
			return true
		}
	}
	return false
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkoutResultMsg:
		return m.finishCheckout(msg)

	case spinner.TickMsg:
		if m.loading == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.props.Visible || !m.mounted {
			return m, nil
		}
		opts := m.options()
		switch {
		case key.Matches(msg, keys.Basic):
			return m.Select(plan.TierBasic)
		case key.Matches(msg, keys.Premium):
			return m.Select(plan.TierPremium)
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			// The last cursor slot is "Maybe later".
			if m.cursor < len(opts) {
				m.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if m.cursor < len(opts) {
				return m.Select(opts[m.cursor])
			}
			return m.dismiss()
		case key.Matches(msg, keys.Dismiss):
			return m.dismiss()
		}
	}
	return m, nil
}

// Select starts checkout for tier. It is a no-op while another checkout is
// loading or when tier is not offered to the current plan.
func (m Model) Select(tier plan.Tier) (Model, tea.Cmd) {
	if !m.mounted || !m.props.Visible || m.loading != "" || !m.offers(tier) {
		return m, nil
	}

	m.loading = tier
	m.errMsg = ""
	m.seq++

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	return m, tea.Batch(m.spinner.Tick, createCheckout(ctx, m.checkout, tier, m.seq))
}

func createCheckout(ctx context.Context, c CheckoutCreator, tier plan.Tier, seq int) tea.Cmd {
	return func() tea.Msg {
		session, err := c.CreateCheckout(ctx, tier)
		return checkoutResultMsg{seq: seq, tier: tier, session: session, err: err}
	}
}

func (m Model) finishCheckout(msg checkoutResultMsg) (Model, tea.Cmd) {
	if !m.mounted || msg.seq != m.seq {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = ""

	url, errMsg := checkoutURL(msg.session, msg.err)
	if msg.err != nil {
		m.logger.Error("checkout error", "tier", msg.tier, "error", msg.err)
	}
	if errMsg != "" {
		m.errMsg = errMsg
		return m, nil
	}

	if err := m.navigate(url); err != nil {
		m.logger.Warn("open checkout url", "error", err)
		m.errMsg = "Could not open browser. Visit: " + url
		return m, nil
	}
	tier := msg.tier
	return m, func() tea.Msg { return RedirectedMsg{Tier: tier, URL: url} }
}

// checkoutURL maps a checkout reply to either a redirect URL or an inline
// error message.
func checkoutURL(session *api.CheckoutSession, err error) (url, errMsg string) {
	if err != nil {
		return "", api.UserMessage(err, MsgCheckoutError)
	}
	if session == nil || session.URL == "" {
		return "", MsgNoCheckoutURL
	}
	return session.URL, ""
}

func (m Model) dismiss() (Model, tea.Cmd) {
	if m.props.OnClose != nil {
		m.props.OnClose()
	}
	return m, nil
}

func (m Model) View() string {
	if !m.props.Visible {
		return ""
	}

	current := m.props.CurrentPlan.Details()
	title := tui.Icon.Render("⚡") + " " + tui.Title.Render("You've hit your limit!")
	sub := tui.Subtitle.Render(fmt.Sprintf("%d %s today on %s plan",
		m.props.LimitCount, m.props.LimitKind.Label(), current.Name))
	header := tui.Header.Width(modalWidth).Render(title + "\n" + sub)

	var b strings.Builder
	b.WriteString(tui.Description.Render("Upgrade now to keep connecting with your community."))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(tui.ErrorBox.Width(modalWidth-6).Render(m.errMsg))
		b.WriteString("\n")
	}

	for i, tier := range m.options() {
		b.WriteString(m.optionView(tier, i == m.cursor))
		b.WriteString("\n")
	}

	later := "Maybe later"
	if m.cursor == len(m.options()) {
		b.WriteString(tui.Selected.Render("> " + later))
	} else {
		b.WriteString(tui.Dimmed.Render("  " + later))
	}
	b.WriteString("\n\n")
	b.WriteString(m.helpBar())

	body := lipgloss.NewStyle().Padding(1, 2).Width(modalWidth).Render(b.String())
	return tui.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (m Model) optionView(tier plan.Tier, focused bool) string {
	d := tier.Plan().Details()

	var name, summary string
	switch tier {
	case plan.TierBasic:
		name = "Basic"
		summary = fmt.Sprintf("%s pins • %s mingles • %s msgs/day", d.Pins, d.Mingles, d.Messages)
	case plan.TierPremium:
		name = "Premium " + tui.Badge.Render("BEST VALUE")
		summary = "Unlimited everything"
	}

	price := strings.TrimSuffix(d.Price, "/mo")
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(modalWidth-20).Render(tui.Selected.Render(name)+"\n"+tui.Description.Render(summary)),
		tui.Price.Render(price)+"\n"+tui.Dimmed.Render("/month"),
	)

	s := top
	if tier == plan.TierPremium {
		features := []string{"Unlimited pins", "Unlimited mingles", "Unlimited messages", "Priority support"}
		s += "\n" + tui.Description.Render("✓ "+strings.Join(features, "  ✓ "))
	}
	if m.loading == tier {
		s += "\n" + m.spinner.View() + " " + tui.Selected.Render("Redirecting to checkout...")
	}

	style := tui.Option
	if focused {
		style = tui.FocusedOption
	}
	if m.loading != "" {
		// Both options are disabled while a checkout is in flight.
		style = style.Faint(true)
	}
	return style.Width(modalWidth - 6).Render(s)
}

func (m Model) helpBar() string {
	var parts []string
	if m.props.CurrentPlan.OffersBasic() {
		parts = append(parts, keys.Basic.Help().Key+" "+keys.Basic.Help().Desc)
	}
	if m.props.CurrentPlan.OffersPremium() {
		parts = append(parts, keys.Premium.Help().Key+" "+keys.Premium.Help().Desc)
	}
	for _, k := range []key.Binding{keys.Up, keys.Enter, keys.Dismiss} {
		parts = append(parts, k.Help().Key+" "+k.Help().Desc)
	}
	return tui.Help.Render(strings.Join(parts, " • "))
}
