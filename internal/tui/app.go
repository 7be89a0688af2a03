// Package tui implements the terminal UI for browsing the media catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/medley/internal/catalog"
	"github.com/drake/medley/internal/domain"
	"github.com/drake/medley/internal/tui/styles"
)

// categories in tab order
var categories = []domain.Category{
	domain.CategoryPictures,
	domain.CategoryVideos,
	domain.CategoryDocuments,
}

// Model is the root Bubble Tea model.
type Model struct {
	svc    *catalog.Service
	search *catalog.SearchService

	list        list.Model
	spin        spinner.Model
	searchInput textinput.Model

	active      int  // Index into categories
	hasMore     bool // Whether the current picture page can load more
	loading     bool
	searching   bool   // Search input has focus
	searchQuery string // Non-empty while showing search results
	status      string
	statusErr   bool
	width       int
	height      int

	// Background refreshes deliver fresh pages through this channel
	fresh chan FreshPageMsg
}

// NewModel creates the root model.
func NewModel(svc *catalog.Service, search *catalog.SearchService) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Amber).
		BorderLeftForeground(styles.Amber)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.LightGray).
		BorderLeftForeground(styles.Amber)

	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.Filter = fuzzyFilter

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Amber)

	input := textinput.New()
	input.Prompt = "search: "
	input.PromptStyle = styles.AccentStyle
	input.CharLimit = 64

	return Model{
		svc:         svc,
		search:      search,
		list:        l,
		spin:        sp,
		searchInput: input,
		loading:     true,
		fresh:       make(chan FreshPageMsg, 8),
	}
}

// Init kicks off the initial load and the fresh-data subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		LoadCategoryCmd(m.svc, m.category(), false, m.fresh),
		WaitForFreshCmd(m.fresh),
	)
}

func (m Model) category() domain.Category {
	return categories[m.active]
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PageLoadedMsg:
		if msg.Category != m.category() {
			return m, nil
		}
		m.loading = false
		m.hasMore = msg.Page.HasMore
		m.searchQuery = ""
		cmd := m.list.SetItems(toListItems(msg.Page.Items))
		return m, cmd

	case FreshPageMsg:
		cmds := []tea.Cmd{WaitForFreshCmd(m.fresh)}
		if msg.Category == m.category() && m.searchQuery == "" {
			m.hasMore = msg.Page.HasMore
			cmds = append(cmds,
				m.list.SetItems(toListItems(msg.Page.Items)),
				func() tea.Msg { return StatusMsg{Message: "catalog updated"} },
			)
		}
		return m, tea.Batch(cmds...)

	case SignedURLMsg:
		m.status = "url: " + msg.URL
		m.statusErr = false
		return m, ClearStatusCmd()

	case SearchResultsMsg:
		m.loading = false
		m.searchQuery = msg.Query
		m.hasMore = false
		cmd := m.list.SetItems(toListItems(msg.Results))
		return m, cmd

	case StatusMsg:
		m.status = msg.Message
		m.statusErr = msg.IsError
		return m, ClearStatusCmd()

	case ClearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case ErrMsg:
		m.loading = false
		m.status = msg.Error()
		m.statusErr = true
		return m, ClearStatusCmd()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input captures everything until enter/esc
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			query := m.searchInput.Value()
			if query == "" {
				return m, nil
			}
			return m, SearchCmd(m.search, query)
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	// The list's own filter mode owns the keyboard while active
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		m.active = (m.active + 1) % len(categories)
		return m.reload(false)

	case "shift+tab", "left", "h":
		m.active = (m.active + len(categories) - 1) % len(categories)
		return m.reload(false)

	case "m":
		// Load more only applies to the paginated pictures source
		if m.category() == domain.CategoryPictures && m.hasMore && !m.loading {
			return m.reload(true)
		}
		return m, nil

	case "r":
		m.svc.InvalidateCache()
		return m.reload(false)

	case "u":
		if item, ok := m.list.SelectedItem().(listItem); ok {
			return m, ResolveURLCmd(m.svc, item.item)
		}
		return m, nil

	case "s":
		m.searching = true
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()

	case "esc":
		if m.searchQuery != "" {
			return m.reload(false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// reload fetches the current category, optionally continuing pagination.
func (m Model) reload(loadMore bool) (tea.Model, tea.Cmd) {
	m.loading = true
	m.searchQuery = ""
	return m, tea.Batch(
		m.spin.Tick,
		LoadCategoryCmd(m.svc, m.category(), loadMore, m.fresh),
	)
}

// View renders the full screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spin.View() + " loading " + string(m.category()) + "...")
	case m.searching:
		b.WriteString("  " + m.searchInput.View())
	default:
		b.WriteString(m.list.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(categories))
	for i, c := range categories {
		label := string(c)
		if i == m.active {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	bar := styles.TitleStyle.Render(" medley ") + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.searchQuery != "" {
		bar += styles.DimStyle.Render("  results for " + m.searchQuery)
	}
	return bar
}

func (m Model) renderStatusBar() string {
	if m.status != "" {
		if m.statusErr {
			return styles.ErrorStyle.Render(" " + m.status)
		}
		return styles.SuccessStyle.Render(" " + m.status)
	}

	count := styles.StatusBarStyle.Render(fmt.Sprintf(" %d items ·", len(m.list.Items())))
	help := " tab: category · /: filter · s: search · r: refresh · u: url · q: quit"
	if m.category() == domain.CategoryPictures && m.hasMore {
		help = " m: load more ·" + help
	}
	return count + styles.HelpStyle.Render(help)
}
