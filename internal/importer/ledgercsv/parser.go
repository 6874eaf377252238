// Package ledgercsv reads semicolon-separated household ledger exports.
// The expected columns are Descrição, Montante, Pessoa and Categoria; a
// negative Montante is an expense, a positive one an income.
package ledgercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/mfreitas/contas/internal/encoding"
	"github.com/mfreitas/contas/internal/importer"
	"github.com/mfreitas/contas/internal/transaction"
)

const (
	colDescription = "Descrição"
	colAmount      = "Montante"
	colPerson      = "Pessoa"
	colCategory    = "Categoria"
)

var requiredCols = []string{colDescription, colAmount, colPerson, colCategory}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]importer.Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := detectHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no ledger header found: expected columns %s", strings.Join(requiredCols, ", "))
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// detectHeader scans rows for one that carries all required columns.
// Exports often lead with preamble lines before the actual header.
func detectHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		if hasRequiredCols(cols) {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func hasRequiredCols(cols colIndex) bool {
	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts ledger rows after the header. headerRowNum is the
// 0-based header index in the original file, used for error messages.
func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]importer.Row, error) {
	var parsed []importer.Row

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		if blankRow(row) {
			continue
		}

		desc := cellValue(row, cols[colDescription])
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		personName := cellValue(row, cols[colPerson])
		if personName == "" {
			return nil, fmt.Errorf("row %d: missing person", rowNum)
		}

		categoryName := cellValue(row, cols[colCategory])
		if categoryName == "" {
			return nil, fmt.Errorf("row %d: missing category", rowNum)
		}

		amountStr := cellValue(row, cols[colAmount])

		cents, err := parseEuropeanAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount %q", rowNum, amountStr)
		}

		if cents == 0 {
			return nil, fmt.Errorf("row %d: zero amount", rowNum)
		}

		kind := transaction.KindIncome
		if cents < 0 {
			kind = transaction.KindExpense
			cents = -cents
		}

		parsed = append(parsed, importer.Row{
			Description:  desc,
			Amount:       cents,
			Kind:         kind,
			PersonName:   personName,
			CategoryName: categoryName,
		})
	}

	return parsed, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
