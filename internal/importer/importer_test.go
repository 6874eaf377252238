package importer_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreitas/contas/internal/importer"
	"github.com/mfreitas/contas/internal/transaction"
)

type stubParser struct {
	rows []importer.Row
	err  error
}

func (s *stubParser) Parse(r io.Reader) ([]importer.Row, error) {
	return s.rows, s.err
}

func TestService_Import(t *testing.T) {
	want := []importer.Row{
		{Description: "Renda", Amount: 60000, Kind: transaction.KindExpense, PersonName: "Maria", CategoryName: "Habitação"},
	}

	svc := importer.NewService(&stubParser{rows: want})

	rows, err := svc.Import(importer.FormatLedger, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, want, rows)
}

func TestService_Import_UnknownFormat(t *testing.T) {
	svc := importer.NewService(&stubParser{})

	_, err := svc.Import(importer.Format("qif"), strings.NewReader(""))
	assert.ErrorContains(t, err, "unknown format")
}
