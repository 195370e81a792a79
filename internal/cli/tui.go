package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/pipseek/pkg/search"
)

// =============================================================================
// resultsModel - Interactive results pager
// =============================================================================

// resultMsg delivers a completed page fetch.
type resultMsg struct {
	page   int
	result *search.Result
}

// errMsg delivers a failed page fetch.
type errMsg struct {
	err error
}

// tickMsg drives the loading animation.
type tickMsg struct{}

// resultsModel is the bubbletea model paging through one search session.
// The first page is fetched before the program starts, so the model always
// has a result to show.
type resultsModel struct {
	session *search.Session
	page    int            // page currently displayed
	target  int            // page being fetched while loading
	result  *search.Result // last completed page
	lines   []string       // rendered panels for the current page
	offset  int            // first visible line
	height  int            // visible lines in the viewport
	loading bool
	frame   int
	err     error
}

// newResultsModel creates a pager positioned on an already fetched page.
func newResultsModel(session *search.Session, page int, result *search.Result) resultsModel {
	return resultsModel{
		session: session,
		page:    page,
		target:  page,
		result:  result,
		lines:   recordLines(result.Records),
		height:  15,
	}
}

// fetchPage fetches a page in the background. The session serializes
// fetches, so at most one of these commands runs at a time.
func fetchPage(session *search.Session, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := session.Fetch(context.Background(), page)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{page: page, result: result}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "pgup":
			m.offset -= m.height
			if m.offset < 0 {
				m.offset = 0
			}
		case "pgdown":
			m.offset += m.height
			if max := m.maxOffset(); m.offset > max {
				m.offset = max
			}
		case "n":
			if !m.loading && m.result.HasNext {
				m.loading = true
				m.err = nil
				m.target = m.page + 1
				return m, tea.Batch(fetchPage(m.session, m.target), spinnerTick())
			}
		case "p":
			if !m.loading && m.page > 1 {
				m.loading = true
				m.err = nil
				m.target = m.page - 1
				return m, tea.Batch(fetchPage(m.session, m.target), spinnerTick())
			}
		}
	case resultMsg:
		m.loading = false
		m.page = msg.page
		m.target = msg.page
		m.result = msg.result
		m.lines = recordLines(msg.result.Records)
		m.offset = 0
	case errMsg:
		m.loading = false
		m.err = msg.err
		m.target = m.page
	case tickMsg:
		if m.loading {
			m.frame++
			return m, spinnerTick()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
		if max := m.maxOffset(); m.offset > max {
			m.offset = max
		}
	}
	return m, nil
}

// maxOffset is the largest offset that still fills the viewport.
func (m resultsModel) maxOffset() int {
	max := len(m.lines) - m.height
	if max < 0 {
		return 0
	}
	return max
}

func (m resultsModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("PyPI results for %q", m.session.Query())))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("n next page  p previous page  ↑/↓ scroll  q quit"))
	b.WriteString("\n\n")

	if m.loading {
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		b.WriteString(styleIconSpinner.Render(frame))
		b.WriteString(" ")
		b.WriteString(StyleDim.Render(fmt.Sprintf("Fetching page %d...", m.target)))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.lines) == 0 {
		b.WriteString(StyleDim.Render("  No packages on this page."))
		b.WriteString("\n")
	}

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	stats := fmt.Sprintf("%d shown · %s total · page %d",
		len(m.result.Records), formatInt(m.result.Total), m.page)
	if !m.result.HasNext {
		stats += " · last page"
	}
	b.WriteString(StyleDim.Render("  " + stats))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError))
		b.WriteString(" ")
		b.WriteString(StyleWarning.Render(m.err.Error()))
	}

	return b.String()
}
