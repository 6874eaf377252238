package report

import (
	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/report"
)

type totalsResponse struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

type personRowResponse struct {
	PersonID uuid.UUID `json:"person_id"`
	Name     string    `json:"name"`
	totalsResponse
}

type categoryRowResponse struct {
	CategoryID  uuid.UUID `json:"category_id"`
	Description string    `json:"description"`
	totalsResponse
}

type personReportResponse struct {
	Rows       []personRowResponse `json:"rows"`
	GrandTotal totalsResponse      `json:"grand_total"`
}

type categoryReportResponse struct {
	Rows       []categoryRowResponse `json:"rows"`
	GrandTotal totalsResponse        `json:"grand_total"`
}

func toTotals(t report.Totals) totalsResponse {
	return totalsResponse{Income: t.Income, Expense: t.Expense, Balance: t.Balance}
}

func toPersonReportResponse(rep report.PersonReport) personReportResponse {
	rows := make([]personRowResponse, len(rep.Rows))
	for i, row := range rep.Rows {
		rows[i] = personRowResponse{
			PersonID:       row.PersonID,
			Name:           row.Name,
			totalsResponse: toTotals(row.Totals),
		}
	}

	return personReportResponse{Rows: rows, GrandTotal: toTotals(rep.GrandTotal)}
}

func toCategoryReportResponse(rep report.CategoryReport) categoryReportResponse {
	rows := make([]categoryRowResponse, len(rep.Rows))
	for i, row := range rep.Rows {
		rows[i] = categoryRowResponse{
			CategoryID:     row.CategoryID,
			Description:    row.Description,
			totalsResponse: toTotals(row.Totals),
		}
	}

	return categoryReportResponse{Rows: rows, GrandTotal: toTotals(rep.GrandTotal)}
}
