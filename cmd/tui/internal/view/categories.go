package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfreitas/contas/internal/category"
)

type categoriesState int

const (
	categoriesStateBrowse categoriesState = iota
	categoriesStateAdd
)

type CategoriesModel struct {
	CommonModel
	categoryService *category.Service

	state      categoriesState
	table      table.Model
	categories []*category.Category
	form       *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formDescription string
	formPurpose     string
}

func NewCategoriesModel(categorySvc *category.Service) CategoriesModel {
	columns := []table.Column{
		{Title: "Description", Width: 35},
		{Title: "Purpose", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
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

	return CategoriesModel{
		categoryService: categorySvc,
		table:           t,
	}
}

func (m CategoriesModel) Title() string { return "Categories" }
func (m CategoriesModel) ShortHelp() string {
	if m.state == categoriesStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | r: refresh"
}

func (m CategoriesModel) Init() tea.Cmd {
	return m.loadCategoriesCmd()
}

func (m CategoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCategoriesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.categories = msg.categories
		m.refreshTable()
		return m, nil

	case categorySavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Added %s", msg.description)
		}
		m.state = categoriesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCategoriesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case categoriesStateBrowse:
		return m.updateBrowse(msg)
	case categoriesStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m CategoriesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCategoriesCmd()
		case "a":
			return m.enterAddMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CategoriesModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formDescription = ""
	m.formPurpose = string(category.PurposeExpense)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDescription).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("purpose").
				Title("Purpose").
				Options(
					huh.NewOption("Expense", string(category.PurposeExpense)),
					huh.NewOption("Income", string(category.PurposeIncome)),
					huh.NewOption("Both", string(category.PurposeBoth)),
				).
				Value(&m.formPurpose),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = categoriesStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m CategoriesModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = categoriesStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m CategoriesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading categories...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(49).
			Render(fmt.Sprintf("Add Category\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CategoriesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.categories))
	for _, c := range m.categories {
		rows = append(rows, table.Row{
			c.Description,
			string(c.Purpose),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadCategoriesMsg struct {
	categories []*category.Category
	err        error
}

func (m CategoriesModel) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		categories, err := m.categoryService.List(ctx)
		return loadCategoriesMsg{categories: categories, err: err}
	}
}

type categorySavedMsg struct {
	description string
	err         error
}

func (m CategoriesModel) saveCmd() tea.Cmd {
	description := m.formDescription
	purpose := category.Purpose(m.formPurpose)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.categoryService.Create(ctx, category.CreateParams{
			Description: description,
			Purpose:     purpose,
		})
		return categorySavedMsg{description: description, err: err}
	}
}
