// Package popup is the interactive surface over the background agent: a
// small form that submits shorten requests through the message bus and
// renders the correlated reply.
package popup

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shrtnr/internal/agent"
	"shrtnr/internal/api"
	"shrtnr/internal/bus"
)

type statsMsg struct {
	stats api.GlobalStats
	err   error
}

type shortenResultMsg bus.Response

type Model struct {
	th theme
	ag *agent.Agent

	urlInput    textinput.Model
	customInput textinput.Model
	customOn    bool
	spin        spinner.Model

	busy      bool
	resultURL string
	errMsg    string

	stats    *api.GlobalStats
	width    int
	quitting bool
}

func New(ag *agent.Agent, initialURL string) Model {
	url := textinput.New()
	url.Placeholder = "https://example.com/very/long/url"
	url.Prompt = "> "
	url.SetValue(initialURL)
	url.Focus()

	custom := textinput.New()
	custom.Placeholder = "custom-code"
	custom.Prompt = "> "
	custom.CharLimit = api.MaxCodeLen

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		th:          defaultTheme(),
		ag:          ag,
		urlInput:    url,
		customInput: custom,
		spin:        sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchStats)
}

// fetchStats fills the footer; failures leave it blank rather than
// blocking the form.
func (m Model) fetchStats() tea.Msg {
	stats, err := m.ag.GlobalStats(context.Background())
	return statsMsg{stats: stats, err: err}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case statsMsg:
		if msg.err == nil {
			s := msg.stats
			m.stats = &s
		}
		return m, nil

	case shortenResultMsg:
		m.busy = false
		if msg.Success {
			m.resultURL = msg.ShortURL
			m.errMsg = ""
		} else {
			m.resultURL = ""
			m.errMsg = msg.Error
		}
		return m, m.fetchStats

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyTab:
			return m.toggleCustom(), nil
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.customOn && m.customInput.Focused() {
		m.customInput, cmd = m.customInput.Update(msg)
	} else {
		m.urlInput, cmd = m.urlInput.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleCustom() Model {
	m.customOn = !m.customOn
	if m.customOn {
		m.urlInput.Blur()
		m.customInput.Focus()
	} else {
		m.customInput.Blur()
		m.customInput.SetValue("")
		m.urlInput.Focus()
	}
	return m
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	url, ok := api.CleanURL(m.urlInput.Value())
	if !ok {
		m.errMsg = "Please enter a URL"
		return m, nil
	}

	m.busy = true
	m.errMsg = ""
	m.resultURL = ""

	reply := make(chan bus.Response, 1)
	m.ag.Bus().Send(bus.Message{
		Kind: bus.KindShorten,
		Shorten: bus.ShortenParams{
			URL:        url,
			CustomCode: m.customInput.Value(),
		},
		Reply: reply,
	})

	wait := func() tea.Msg {
		return shortenResultMsg(<-reply)
	}
	return m, tea.Batch(m.spin.Tick, wait)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.th.Header.Render("SHRTNR") + "\n\n")

	b.WriteString(m.th.Muted.Render("URL to shorten") + "\n")
	b.WriteString(m.urlInput.View() + "\n")
	if m.customOn {
		b.WriteString(m.th.Muted.Render("Custom code") + "\n")
		b.WriteString(m.customInput.View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.spin.View() + m.th.Muted.Render(" Shortening...") + "\n")
	case m.resultURL != "":
		b.WriteString(m.th.Success.Render(m.resultURL) + "\n")
		// The clipboard write is fire-and-forget; this line can race the
		// actual write and that is accepted for a non-critical affordance.
		b.WriteString(m.th.Muted.Render("Copied to clipboard!") + "\n")
	case m.errMsg != "":
		b.WriteString(m.th.Danger.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n" + m.footer())

	frame := m.th.Frame
	if m.width > 4 {
		frame = frame.Width(min(m.width-2, 64))
	}
	return frame.Render(b.String())
}

func (m Model) footer() string {
	hints := m.th.Muted.Render("enter shorten · tab custom code · esc quit")
	if m.stats == nil {
		return hints
	}
	line := fmt.Sprintf("%d urls · %d clicks · %d today",
		m.stats.TotalURLs, m.stats.TotalClicks, m.stats.URLsToday)
	return lipgloss.JoinVertical(lipgloss.Left, m.th.Muted.Render(line), hints)
}
