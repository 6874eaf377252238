package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfreitas/contas/internal/report"
)

type reportGrouping int

const (
	reportByPerson reportGrouping = iota
	reportByCategory
)

type ReportsModel struct {
	CommonModel
	reportService *report.Service

	grouping reportGrouping
	table    table.Model

	personReport   report.PersonReport
	categoryReport report.CategoryReport

	loading bool
	err     error
}

func NewReportsModel(reportSvc *report.Service) ReportsModel {
	t := table.New(
		table.WithColumns(personReportColumns()),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ReportsModel{
		reportService: reportSvc,
		table:         t,
	}
}

func personReportColumns() []table.Column {
	return []table.Column{
		{Title: "Person", Width: 30},
		{Title: "Income", Width: 12},
		{Title: "Expense", Width: 12},
		{Title: "Balance", Width: 12},
	}
}

func categoryReportColumns() []table.Column {
	return []table.Column{
		{Title: "Category", Width: 30},
		{Title: "Income", Width: 12},
		{Title: "Expense", Width: 12},
		{Title: "Balance", Width: 12},
	}
}

func (m ReportsModel) Title() string { return "Reports" }
func (m ReportsModel) ShortHelp() string {
	return "Esc: back | g: toggle grouping | r: refresh"
}

func (m ReportsModel) Init() tea.Cmd {
	return m.loadReportsCmd()
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReportsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.personReport = msg.personReport
		m.categoryReport = msg.categoryReport
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "g":
			if m.grouping == reportByPerson {
				m.grouping = reportByCategory
			} else {
				m.grouping = reportByPerson
			}
			m.refreshTable()
			return m, nil
		case "r":
			m.loading = true
			return m, m.loadReportsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ReportsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Computing totals...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	grouping := "by person"
	grand := m.personReport.GrandTotal
	if m.grouping == reportByCategory {
		grouping = "by category"
		grand = m.categoryReport.GrandTotal
	}

	header := fmt.Sprintf("Totals %s | [g] toggle grouping", grouping)

	footer := fmt.Sprintf(
		"Total: income %s | expense %s | balance %s",
		FormatAmount(grand.Income),
		FormatAmount(grand.Expense),
		FormatAmount(grand.Balance),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Bold(true).PaddingTop(1).Render(footer),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ReportsModel) refreshTable() {
	if m.grouping == reportByPerson {
		m.table.SetColumns(personReportColumns())

		rows := make([]table.Row, 0, len(m.personReport.Rows))
		for _, row := range m.personReport.Rows {
			rows = append(rows, table.Row{
				row.Name,
				FormatAmount(row.Income),
				FormatAmount(row.Expense),
				FormatAmount(row.Balance),
			})
		}
		m.table.SetRows(rows)

		return
	}

	m.table.SetColumns(categoryReportColumns())

	rows := make([]table.Row, 0, len(m.categoryReport.Rows))
	for _, row := range m.categoryReport.Rows {
		rows = append(rows, table.Row{
			row.Description,
			FormatAmount(row.Income),
			FormatAmount(row.Expense),
			FormatAmount(row.Balance),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadReportsMsg struct {
	personReport   report.PersonReport
	categoryReport report.CategoryReport
	err            error
}

func (m ReportsModel) loadReportsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		byPerson, err := m.reportService.ByPerson(ctx)
		if err != nil {
			return loadReportsMsg{err: err}
		}

		byCategory, err := m.reportService.ByCategory(ctx)
		if err != nil {
			return loadReportsMsg{err: err}
		}

		return loadReportsMsg{personReport: byPerson, categoryReport: byCategory}
	}
}
