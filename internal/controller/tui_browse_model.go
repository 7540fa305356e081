package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rowDelegate renders one list row: a fixed-width badge then the path.
type rowDelegate struct {
	offset     int
	badgeWidth int
}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(rowItem)
	if !ok {
		return
	}

	width := m.Width() - d.badgeWidth - 2

	badgeStyle := statusStyle(row.ok).Width(d.badgeWidth).Align(lipgloss.Right)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	displayText := truncateToWidth(row.text(), width)

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		badgeStyle = selected.Width(d.badgeWidth).Align(lipgloss.Right)
		textStyle = selected
		displayText = animateScroll(row.text(), width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", badgeStyle.Render(row.badge), textStyle.Render(displayText))
}

type modeText struct {
	title       string
	badgeHeader string
	textHeader  string
	loading     string
}

var modeTexts = map[StartMode]modeText{
	ModeSections: {title: "✈ Trip Sections", badgeHeader: "Elements", textHeader: "File  Section", loading: "Scanning sources…"},
	ModeBatch:    {title: "✈ Batch Edit", badgeHeader: "Status", textHeader: "File  Edit", loading: "Loading plan…"},
	ModeReports:  {title: "✈ Edit Reports", badgeHeader: "Status", textHeader: "File  Edit", loading: "Loading reports…"},
}

// browseModel lists sections or edit reports and shows the selected diff.
type browseModel struct {
	mode         StartMode
	width        int
	height       int
	rows         list.Model
	delegate     rowDelegate
	progressBar  progress.Model
	rendered     bool
	err          error
	files        int
	filesDone    int
	edits        int
	threads      int
	animOffset   int
	lastSelected int
	showDiff     bool
}

func newBrowseModel(mode StartMode) browseModel {
	delegate := rowDelegate{badgeWidth: 8}
	if mode != ModeSections {
		delegate.badgeWidth = len("last element protected")
	}

	rows := list.New([]list.Item{}, delegate, 80, 20)
	rows.SetShowPagination(false)
	rows.SetShowFilter(true)
	rows.SetShowHelp(false)
	rows.SetShowTitle(false)
	rows.SetShowStatusBar(false)
	rows.FilterInput.Placeholder = "Filter by path…"

	return browseModel{
		mode:     mode,
		rows:     rows,
		delegate: delegate,
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		lastSelected: -1,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rows.SetWidth(m.width)

		m.progressBar.Width = m.width - 8
		if m.progressBar.Width < 20 {
			m.progressBar.Width = 20
		}

	case tickMsg:
		if m.rows.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.rows.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case sectionsMsg:
		m = m.setRows(msg.rows)
		m.files = msg.files

	case reportsMsg:
		m = m.setRows(msg.rows)

	case batchInfoMsg:
		m.files = msg.files
		m.edits = msg.edits
		m.threads = msg.threads
		m.filesDone = 0
		m.rendered = true

	case fileResultMsg:
		items := m.rows.Items()
		for _, row := range msg.rows {
			items = append(items, row)
		}

		m = m.setItems(items)
		m.filesDone++

	case errorMsg:
		m.err = msg.err
		m.rendered = true
	}

	return m, cmd
}

func (m browseModel) handleKeyMsg(msg tea.KeyMsg) (browseModel, tea.Cmd) {
	if m.rows.FilterState() == list.Filtering {
		var cmd tea.Cmd

		m.rows, cmd = m.rows.Update(msg)

		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", " ":
		m.showDiff = !m.showDiff && m.selectedDiff() != ""
		return m, nil
	}

	var cmd tea.Cmd

	m.rows, cmd = m.rows.Update(msg)

	if m.rows.Index() != m.lastSelected {
		m.lastSelected = m.rows.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.rows.SetDelegate(m.delegate)
		m.showDiff = false
	}

	return m, cmd
}

func (m browseModel) setRows(rows []rowItem) browseModel {
	items := make([]list.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row)
	}

	return m.setItems(items)
}

func (m browseModel) setItems(items []list.Item) browseModel {
	m.rows.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m browseModel) selectedDiff() string {
	row, ok := m.rows.SelectedItem().(rowItem)
	if !ok {
		return ""
	}

	return strings.TrimSpace(row.detail)
}

func (m browseModel) countOK() int {
	count := 0

	for _, item := range m.rows.Items() {
		if row, ok := item.(rowItem); ok && row.ok {
			count++
		}
	}

	return count
}

func (m browseModel) View() string {
	texts := modeTexts[m.mode]

	if !m.rendered {
		return texts.loading + "\n"
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render(texts.title)

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 0, 1, 2)
		return lipgloss.JoinVertical(lipgloss.Left, title, errStyle.Render("Error: "+m.err.Error()))
	}

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	blocks := []string{title, summaryStyle.Render(m.summary(accentStyle))}

	if m.mode == ModeBatch && m.files > 0 {
		done := float64(m.filesDone) / float64(m.files)
		blocks = append(blocks, lipgloss.NewStyle().Padding(0, 0, 1, 2).Render(m.progressBar.ViewAs(done)))
	}

	blocks = append(blocks, m.renderTable(texts))

	if m.showDiff {
		blocks = append(blocks, m.renderDiffBox())
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • enter diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, append(blocks, footer)...)
}

func (m browseModel) summary(accent lipgloss.Style) string {
	num := func(n int) string { return accent.Render(fmt.Sprintf("%d", n)) }
	total := len(m.rows.Items())

	switch m.mode {
	case ModeSections:
		return fmt.Sprintf("Sections: %s   Files: %s", num(total), num(m.files))
	case ModeBatch:
		return fmt.Sprintf("Files: %s/%s   Applied: %s/%s   Workers: %s",
			num(m.filesDone), num(m.files), num(m.countOK()), num(m.edits), num(m.threads))
	default:
		return fmt.Sprintf("Edits: %s   Applied: %s", num(total), num(m.countOK()))
	}
}

func (m browseModel) renderTable(texts modeText) string {
	// title, summary, footer, borders and headers
	listHeight := m.height - 9
	if m.showDiff {
		listHeight -= m.diffMaxLines() + 3
	}

	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	m.rows.SetHeight(listHeight)
	m.rows.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%*s  %s", m.delegate.badgeWidth, texts.badgeHeader, texts.textHeader))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.rows.View()))
}

func (m browseModel) diffMaxLines() int {
	return min(max(m.height/3, 6), 20)
}

func (m browseModel) renderDiffBox() string {
	diff := m.selectedDiff()
	if diff == "" {
		return ""
	}

	width := m.width - 6
	if width < 20 {
		width = 20
	}

	lines := strings.Split(diff, "\n")
	if maxLines := m.diffMaxLines(); len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "…")
	}

	body := renderDiff(strings.Join(lines, "\n"), width-4)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Width(width).
		Render(body)
}
