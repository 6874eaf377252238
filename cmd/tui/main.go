package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/mfreitas/contas/cmd/tui/internal/view"
	"github.com/mfreitas/contas/internal/category"
	categoryStore "github.com/mfreitas/contas/internal/category/store"
	"github.com/mfreitas/contas/internal/config"
	"github.com/mfreitas/contas/internal/database"
	"github.com/mfreitas/contas/internal/person"
	personStore "github.com/mfreitas/contas/internal/person/store"
	"github.com/mfreitas/contas/internal/report"
	reportStore "github.com/mfreitas/contas/internal/report/store"
	"github.com/mfreitas/contas/internal/transaction"
	txStore "github.com/mfreitas/contas/internal/transaction/store"
)

type model struct {
	personService   *person.Service
	categoryService *category.Service
	txService       *transaction.Service
	reportService   *report.Service

	currentView View

	peopleView       view.PeopleModel
	categoriesView   view.CategoriesModel
	transactionsView view.TransactionsModel
	reportsView      view.ReportsModel
}

type View int

const (
	ViewMenu         View = 0
	ViewPeople       View = 1
	ViewCategories   View = 2
	ViewTransactions View = 3
	ViewReports      View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	personSvc := person.NewService(personStore.New(db))
	categorySvc := category.NewService(categoryStore.New(db))
	txSvc := transaction.NewService(txStore.New(db))
	reportSvc := report.NewService(reportStore.New(db))

	return model{
		personService:    personSvc,
		categoryService:  categorySvc,
		txService:        txSvc,
		reportService:    reportSvc,
		currentView:      ViewMenu,
		peopleView:       view.NewPeopleModel(personSvc),
		categoriesView:   view.NewCategoriesModel(categorySvc),
		transactionsView: view.NewTransactionsModel(txSvc, personSvc, categorySvc),
		reportsView:      view.NewReportsModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewPeople
				m.peopleView = view.NewPeopleModel(m.personService)

				return m, m.peopleView.Init()
			case "2":
				m.currentView = ViewCategories
				m.categoriesView = view.NewCategoriesModel(m.categoryService)

				return m, m.categoriesView.Init()
			case "3":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.personService, m.categoryService)

				return m, m.transactionsView.Init()
			case "4":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.reportService)

				return m, m.reportsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewPeople:
		var newModel tea.Model
		newModel, cmd = m.peopleView.Update(msg)
		m.peopleView = newModel.(view.PeopleModel)
	case ViewCategories:
		var newModel tea.Model
		newModel, cmd = m.categoriesView.Update(msg)
		m.categoriesView = newModel.(view.CategoriesModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Contas\n\n" +
				"1. People\n" +
				"2. Categories\n" +
				"3. Transactions\n" +
				"4. Reports\n\n" +
				"q. Quit",
		)
	case ViewPeople:
		return m.peopleView.View()
	case ViewCategories:
		return m.categoriesView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewReports:
		return m.reportsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
