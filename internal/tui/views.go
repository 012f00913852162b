package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/gate"
)

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	// The tree and tab layout are re-derived on every render: session status
	// and terminal width both change underneath us.
	switch SelectTree(m.session.Status()) {
	case TreeLoading:
		return m.renderLoading()
	case TreeAuth:
		return m.renderAuth()
	default:
		return m.renderMain(SelectTabLayout(m.width))
	}
}

func (m Model) renderLoading() string {
	return m.styles.Border.Render(
		fmt.Sprintf("%s Checking your session...", m.spinner.View()),
	)
}

func (m Model) renderAuth() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("barhop"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Sign in to browse bars, events, and reviews"))
	b.WriteString("\n\n")

	b.WriteString("Email\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Signing in...")
	}
	if m.notice != "" {
		b.WriteString("\n" + m.styles.Success.Render(m.notice))
	}
	if m.lastError != "" {
		b.WriteString("\n" + m.styles.Error.Render(firstLine(m.lastError)))
	}

	b.WriteString("\n" + m.styles.Help.Render("tab: switch field • enter: sign in • esc: quit"))
	b.WriteString("\n" + m.styles.Muted.Render("No account? Run 'barhop auth register' first."))

	return m.styles.Border.Render(b.String())
}

func (m Model) renderMain(layout TabLayout) string {
	tabs := m.renderTabBar()
	content := m.renderActiveTab()
	help := m.styles.Help.Render("tab/1-4: switch • r: reload • ctrl+o: sign out • q: quit")

	if layout == TabsTop {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, content, help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, tabs, help)
}

func (m Model) renderTabBar() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			rendered = append(rendered, m.styles.TabActive.Render(name))
		} else {
			rendered = append(rendered, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderActiveTab() string {
	var b strings.Builder

	if user := m.session.User(); user != nil {
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Signed in as %s (%s)", user.Name, user.AccountType)))
		b.WriteString("\n")
	}

	switch m.activeTab {
	case TabEvents:
		b.WriteString(m.renderEvents())
	case TabReviews:
		b.WriteString(m.renderReviews())
	case TabBusiness:
		b.WriteString(m.renderBusiness())
	default:
		b.WriteString(m.renderBars())
	}

	if m.loadingData {
		b.WriteString("\n" + m.spinner.View() + " Loading...")
	}
	if m.lastError != "" {
		b.WriteString("\n" + m.styles.Error.Render(firstLine(m.lastError)))
	}

	return b.String()
}

func (m Model) renderBars() string {
	if len(m.bars) == 0 {
		return m.styles.Muted.Render("No bars yet. Press r to reload.")
	}
	return m.barsTable.View()
}

func (m Model) renderEvents() string {
	if len(m.events) == 0 {
		return m.styles.Muted.Render("No upcoming events.")
	}

	var b strings.Builder
	for _, e := range m.events {
		b.WriteString(fmt.Sprintf("%s  %s", e.StartsAt.Format("Mon Jan 2 15:04"), e.Title))
		if e.BarName != "" {
			b.WriteString(m.styles.Muted.Render("  @ " + e.BarName))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderReviews() string {
	if m.reviewsBar == "" {
		return m.styles.Muted.Render("Select a bar on the Bars tab and press enter to see its reviews.")
	}
	if len(m.reviews) == 0 {
		return m.styles.Muted.Render("No reviews yet for this bar.")
	}

	var b strings.Builder
	for _, r := range m.reviews {
		b.WriteString(fmt.Sprintf("%s %s\n", strings.Repeat("★", r.Rating), m.styles.Muted.Render(r.UserName)))
		b.WriteString(r.Comment + "\n\n")
	}
	return b.String()
}

// renderBusiness runs the route gate before showing any management surface.
// The branch order is fixed: loading, sign-in, wrong account type, content.
func (m Model) renderBusiness() string {
	switch gate.Decide(m.session.Status(), m.session.User(), api.AccountTypeBusiness) {
	case gate.BranchLoading:
		return m.spinner.View() + " Checking your session..."
	case gate.BranchSignInRequired:
		return m.styles.Muted.Render("Sign in to manage your bars.")
	case gate.BranchUpgradeRequired:
		return m.styles.Muted.Render("Managing bars requires a business account.\n") +
			m.styles.Muted.Render("Run 'barhop auth register --account-type business' to create one.")
	}

	if len(m.myBars) == 0 {
		return m.styles.Muted.Render("You have no bars yet. Use 'barhop business create-bar' to add one.")
	}

	var b strings.Builder
	for _, bar := range m.myBars {
		b.WriteString(fmt.Sprintf("%s  %s\n", bar.Name, m.styles.Muted.Render(bar.City)))
	}
	return b.String()
}

// businessBranchAuthorized reports whether the gate would show the business
// content, so data is only fetched when it will actually render.
func (m Model) businessBranchAuthorized() bool {
	return gate.Decide(m.session.Status(), m.session.User(), api.AccountTypeBusiness) == gate.BranchAuthorized
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", rating)
}

func formatCount(n int) string {
	return fmt.Sprintf("%d", n)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
