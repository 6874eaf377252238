package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mfreitas/contas/internal/person"
)

type peopleState int

const (
	peopleStateBrowse peopleState = iota
	peopleStateAdd
	peopleStateDelete
)

type PeopleModel struct {
	CommonModel
	personService *person.Service

	state  peopleState
	table  table.Model
	people []*person.Person
	form   *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formName    string
	formAge     string
	formConfirm bool
}

func NewPeopleModel(personSvc *person.Service) PeopleModel {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Age", Width: 5},
		{Title: "Minor", Width: 6},
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

	return PeopleModel{
		personService: personSvc,
		table:         t,
	}
}

func (m PeopleModel) Title() string { return "People" }
func (m PeopleModel) ShortHelp() string {
	switch m.state {
	case peopleStateAdd:
		return "Navigate form | Esc: cancel"
	case peopleStateDelete:
		return "Confirm | Esc: cancel"
	}

	return "Esc: back | a: add | d: delete | r: refresh"
}

func (m PeopleModel) Init() tea.Cmd {
	return m.loadPeopleCmd()
}

func (m PeopleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPeopleMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.people = msg.people
		m.refreshTable()
		return m, nil

	case personSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Added %s", msg.name)
		}
		m.state = peopleStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadPeopleCmd()

	case personDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Deleted %s, removed %d orphaned categories", msg.name, msg.removedCategories)
		}
		m.state = peopleStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadPeopleCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case peopleStateBrowse:
		return m.updateBrowse(msg)
	case peopleStateAdd, peopleStateDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m PeopleModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadPeopleCmd()
		case "a":
			return m.enterAddMode()
		case "d":
			return m.enterDeleteMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m PeopleModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formAge = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("age").
				Title("Age").
				Value(&m.formAge).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("age must be a number")
					}
					if n < 0 || n > person.MaxAge {
						return fmt.Errorf("age must be between 0 and %d", person.MaxAge)
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = peopleStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m PeopleModel) enterDeleteMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.people) {
		return m, nil
	}

	p := m.people[idx]
	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Delete %s and all their transactions?", p.Name)).
				Description("Categories left without transactions are removed too.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.formConfirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = peopleStateDelete
	m.table.Blur()
	return m, m.form.Init()
}

func (m PeopleModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = peopleStateBrowse
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

	if m.state == peopleStateDelete {
		if !m.formConfirm {
			m.state = peopleStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}

		return m, m.deleteCmd()
	}

	return m, m.saveCmd()
}

func (m PeopleModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading people...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.form != nil {
		title := "Add Person"
		if m.state == peopleStateDelete {
			title = "Delete Person"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *PeopleModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.people))
	for _, p := range m.people {
		minor := ""
		if p.Minor() {
			minor = "yes"
		}
		rows = append(rows, table.Row{
			p.Name,
			strconv.Itoa(p.Age),
			minor,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadPeopleMsg struct {
	people []*person.Person
	err    error
}

func (m PeopleModel) loadPeopleCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		people, err := m.personService.List(ctx)
		return loadPeopleMsg{people: people, err: err}
	}
}

type personSavedMsg struct {
	name string
	err  error
}

func (m PeopleModel) saveCmd() tea.Cmd {
	name := m.formName
	age, _ := strconv.Atoi(m.formAge)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.personService.Create(ctx, person.CreateParams{Name: name, Age: age})
		return personSavedMsg{name: name, err: err}
	}
}

type personDeletedMsg struct {
	name              string
	removedCategories int
	err               error
}

func (m PeopleModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.people) {
		return nil
	}

	p := m.people[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		removed, err := m.personService.Delete(ctx, p.ID)
		return personDeletedMsg{name: p.Name, removedCategories: removed, err: err}
	}
}
