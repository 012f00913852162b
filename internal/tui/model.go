// Package tui is the interactive terminal application: a Loading tree while
// the session resolves, an Auth tree while signed out, and a tabbed Main
// tree once signed in.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/session"
)

// Tab identifies a tab in the main tree.
type Tab int

// Main tree tabs
const (
	// TabBars lists bars
	TabBars Tab = iota
	// TabEvents lists upcoming events
	TabEvents
	// TabReviews lists reviews for the selected bar
	TabReviews
	// TabBusiness manages the signed-in business account's bars
	TabBusiness
)

var tabNames = []string{"Bars", "Events", "Reviews", "My business"}

// opTimeout bounds every API call issued from the TUI.
const opTimeout = 15 * time.Second

// Model represents the TUI application state
type Model struct {
	session *session.Manager
	client  *api.Client

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool

	// busy debounces session-mutating operations: the submit handlers are
	// disabled while one is in flight, since overlapping login/logout calls
	// are not serialized by the session manager.
	busy bool

	activeTab Tab
	lastError string
	notice    string

	// Auth form state
	emailInput    textinput.Model
	passwordInput textinput.Model
	focusPassword bool

	// Data state
	spinner     spinner.Model
	barsTable   table.Model
	bars        []api.Bar
	events      []api.Event
	reviews     []api.Review
	reviewsBar  string
	myBars      []api.Bar
	loadingData bool

	styles Styles
}

// NewModel creates the application model in the resolving state.
func NewModel(sess *session.Manager, client *api.Client) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "City", Width: 16},
		{Title: "Rating", Width: 8},
		{Title: "Reviews", Width: 8},
	}
	barsTable := table.New(table.WithColumns(columns), table.WithHeight(12))

	return Model{
		session:       sess,
		client:        client,
		emailInput:    email,
		passwordInput: password,
		spinner:       sp,
		barsTable:     barsTable,
		styles:        DefaultStyles(),
	}
}

// Messages

type sessionResolvedMsg struct{ err error }

type loginResultMsg struct{ err error }

type logoutResultMsg struct{ err error }

type barsLoadedMsg struct {
	bars []api.Bar
	err  error
}

type eventsLoadedMsg struct {
	events []api.Event
	err    error
}

type reviewsLoadedMsg struct {
	barID   string
	reviews []api.Review
	err     error
}

type myBarsLoadedMsg struct {
	bars []api.Bar
	err  error
}

// Commands

func (m Model) resolveSession() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return sessionResolvedMsg{err: m.session.Resolve(ctx)}
	}
}

func (m Model) submitLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		_, err := m.session.Login(ctx, email, password)
		return loginResultMsg{err: err}
	}
}

func (m Model) submitLogout() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		return logoutResultMsg{err: m.session.Logout(ctx)}
	}
}

func (m Model) loadBars() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		bars, err := m.client.ListBars(ctx, "")
		return barsLoadedMsg{bars: bars, err: err}
	}
}

func (m Model) loadEvents() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		events, err := m.client.ListEvents(ctx)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m Model) loadReviews(barID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		reviews, err := m.client.ListReviews(ctx, barID)
		return reviewsLoadedMsg{barID: barID, reviews: reviews, err: err}
	}
}

func (m Model) loadMyBars() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		bars, err := m.client.MyBars(ctx)
		return myBarsLoadedMsg{bars: bars, err: err}
	}
}

// Init kicks off session resolution (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.resolveSession(), m.spinner.Tick)
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionResolvedMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
		}
		if m.session.Status() == session.StatusAuthenticated {
			m.loadingData = true
			return m, m.loadBars()
		}
		return m, nil

	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.lastError = ""
		m.passwordInput.SetValue("")
		m.activeTab = TabBars
		m.loadingData = true
		return m, m.loadBars()

	case logoutResultMsg:
		m.busy = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.lastError = ""
		m.notice = "Signed out."
		return m, nil

	case barsLoadedMsg:
		m.loadingData = false
		if m.dropOnAuthError(msg.err) {
			return m, nil
		}
		m.bars = msg.bars
		m.barsTable.SetRows(barRows(msg.bars))
		return m, nil

	case eventsLoadedMsg:
		m.loadingData = false
		if m.dropOnAuthError(msg.err) {
			return m, nil
		}
		m.events = msg.events
		return m, nil

	case reviewsLoadedMsg:
		m.loadingData = false
		if m.dropOnAuthError(msg.err) {
			return m, nil
		}
		m.reviewsBar = msg.barID
		m.reviews = msg.reviews
		return m, nil

	case myBarsLoadedMsg:
		m.loadingData = false
		if m.dropOnAuthError(msg.err) {
			return m, nil
		}
		m.myBars = msg.bars
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// dropOnAuthError records a data-load failure and, when the token was
// rejected, forces the session back to the auth flow.
func (m *Model) dropOnAuthError(err error) bool {
	if err == nil {
		m.lastError = ""
		return false
	}

	m.lastError = err.Error()

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if m.session.DropIfExpired(ctx, err) {
		m.notice = "Your session expired. Please sign in again."
		return true
	}
	return false
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch SelectTree(m.session.Status()) {
	case TreeAuth:
		return m.handleAuthKeys(msg)
	case TreeMain:
		return m.handleMainKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusPassword = !m.focusPassword
		if m.focusPassword {
			m.emailInput.Blur()
			return m, m.passwordInput.Focus()
		}
		m.passwordInput.Blur()
		return m, m.emailInput.Focus()

	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.notice = ""
		return m, m.submitLogin(m.emailInput.Value(), m.passwordInput.Value())

	case "esc":
		m.quitting = true
		return m, tea.Quit
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "right", "l":
		return m.switchTab((m.activeTab + 1) % Tab(len(tabNames)))

	case "shift+tab", "left", "h":
		return m.switchTab((m.activeTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))

	case "1", "2", "3", "4":
		return m.switchTab(Tab(int(msg.String()[0] - '1')))

	case "r":
		return m.reloadActiveTab()

	case "ctrl+o":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.submitLogout()

	case "enter":
		if m.activeTab == TabBars {
			return m.switchTab(TabReviews)
		}
	}

	if m.activeTab == TabBars {
		var cmd tea.Cmd
		m.barsTable, cmd = m.barsTable.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	return m.reloadActiveTab()
}

func (m Model) reloadActiveTab() (tea.Model, tea.Cmd) {
	m.loadingData = true
	switch m.activeTab {
	case TabEvents:
		return m, m.loadEvents()
	case TabReviews:
		if bar := m.selectedBar(); bar != nil {
			return m, m.loadReviews(bar.ID)
		}
		m.loadingData = false
		return m, nil
	case TabBusiness:
		// Only load when the gate will actually show the content.
		if m.businessBranchAuthorized() {
			return m, m.loadMyBars()
		}
		m.loadingData = false
		return m, nil
	default:
		return m, m.loadBars()
	}
}

func (m Model) selectedBar() *api.Bar {
	idx := m.barsTable.Cursor()
	if idx < 0 || idx >= len(m.bars) {
		return nil
	}
	return &m.bars[idx]
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focusPassword {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func barRows(bars []api.Bar) []table.Row {
	rows := make([]table.Row, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, table.Row{
			b.Name,
			b.City,
			formatRating(b.Rating),
			formatCount(b.ReviewCount),
		})
	}
	return rows
}
