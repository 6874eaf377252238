package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/transaction"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateAdd
)

type TransactionsModel struct {
	CommonModel
	txService       *transaction.Service
	personService   *person.Service
	categoryService *category.Service

	state transactionsState
	table table.Model
	txs   []*transaction.Transaction
	form  *huh.Form

	// Lookup tables rebuilt on every load.
	people     []*person.Person
	categories []*category.Category
	personName map[string]string
	catName    map[string]string

	loading bool
	err     error
	status  string

	// Form bindings
	formDescription string
	formAmount      string
	formKind        string
	formPersonID    string
	formCategoryID  string
}

func NewTransactionsModel(txSvc *transaction.Service, personSvc *person.Service, categorySvc *category.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Description", Width: 30},
		{Title: "Amount", Width: 10},
		{Title: "Kind", Width: 8},
		{Title: "Person", Width: 20},
		{Title: "Category", Width: 20},
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

	return TransactionsModel{
		txService:       txSvc,
		personService:   personSvc,
		categoryService: categorySvc,
		table:           t,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	if m.state == transactionsStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadLedgerCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadLedgerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.txs = msg.txs
		m.people = msg.people
		m.categories = msg.categories
		m.rebuildNames()
		m.refreshTable()
		return m, nil

	case transactionSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Rejected: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Recorded %s", msg.description)
		}
		m.state = transactionsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadLedgerCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case transactionsStateBrowse:
		return m.updateBrowse(msg)
	case transactionsStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadLedgerCmd()
		case "a":
			return m.enterAddMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	if len(m.people) == 0 || len(m.categories) == 0 {
		m.status = "Add at least one person and one category first"
		return m, nil
	}

	m.formDescription = ""
	m.formAmount = ""
	m.formKind = string(transaction.KindExpense)
	m.formPersonID = m.people[0].ID.String()
	m.formCategoryID = m.categories[0].ID.String()

	personOptions := make([]huh.Option[string], 0, len(m.people))
	for _, p := range m.people {
		personOptions = append(personOptions, huh.NewOption(p.Name, p.ID.String()))
	}

	categoryOptions := make([]huh.Option[string], 0, len(m.categories))
	for _, c := range m.categories {
		label := fmt.Sprintf("%s (%s)", c.Description, c.Purpose)
		categoryOptions = append(categoryOptions, huh.NewOption(label, c.ID.String()))
	}

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

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("12,50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					cents, err := parseAmount(s)
					if err != nil {
						return fmt.Errorf("amount must be a number")
					}
					if cents <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Expense", string(transaction.KindExpense)),
					huh.NewOption("Income", string(transaction.KindIncome)),
				).
				Value(&m.formKind),

			huh.NewSelect[string]().
				Key("person").
				Title("Person").
				Options(personOptions...).
				Value(&m.formPersonID),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(&m.formCategoryID),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = transactionsStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m TransactionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transactionsStateBrowse
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

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
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
			Width(54).
			Render(fmt.Sprintf("New Transaction\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) rebuildNames() {
	m.personName = make(map[string]string, len(m.people))
	for _, p := range m.people {
		m.personName[p.ID.String()] = p.Name
	}

	m.catName = make(map[string]string, len(m.categories))
	for _, c := range m.categories {
		m.catName[c.ID.String()] = c.Description
	}
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			tx.Description,
			FormatSigned(tx.Amount, tx.Kind == transaction.KindExpense),
			string(tx.Kind),
			m.personName[tx.PersonID.String()],
			m.catName[tx.CategoryID.String()],
		})
	}
	m.table.SetRows(rows)
}

// parseAmount accepts both 12,50 and 12.50 and returns cents.
func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.New(100, 0)).IntPart(), nil
}

// Messages

type loadLedgerMsg struct {
	txs        []*transaction.Transaction
	people     []*person.Person
	categories []*category.Category
	err        error
}

func (m TransactionsModel) loadLedgerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx)
		if err != nil {
			return loadLedgerMsg{err: err}
		}

		people, err := m.personService.List(ctx)
		if err != nil {
			return loadLedgerMsg{err: err}
		}

		categories, err := m.categoryService.List(ctx)
		if err != nil {
			return loadLedgerMsg{err: err}
		}

		return loadLedgerMsg{txs: txs, people: people, categories: categories}
	}
}

type transactionSavedMsg struct {
	description string
	err         error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	description := m.formDescription
	cents, _ := parseAmount(m.formAmount)
	kind := transaction.Kind(m.formKind)
	personID := m.formPersonID
	categoryID := m.formCategoryID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		params := transaction.CreateParams{
			Description: description,
			Amount:      cents,
			Kind:        kind,
		}

		var err error
		if params.PersonID, err = uuid.Parse(personID); err != nil {
			return transactionSavedMsg{description: description, err: err}
		}

		if params.CategoryID, err = uuid.Parse(categoryID); err != nil {
			return transactionSavedMsg{description: description, err: err}
		}

		_, err = m.txService.Create(ctx, params)
		return transactionSavedMsg{description: description, err: err}
	}
}
