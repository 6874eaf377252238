package ledgercsv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/mfreitas/contas/internal/importer/ledgercsv"
	"github.com/mfreitas/contas/internal/transaction"
)

func TestParser_FullLedger(t *testing.T) {
	csv := `Exportação de movimentos - 30-08-2026
Agregado;FREITAS

Descrição;Montante;Pessoa;Categoria
Supermercado;-85,40;Maria;Alimentação
Salário Agosto;1.250,00;Maria;Vencimento
Passe escolar;-30,00;Tomás;Transportes
`

	p := ledgercsv.NewParser()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Supermercado", rows[0].Description)
	assert.Equal(t, int64(8540), rows[0].Amount)
	assert.Equal(t, transaction.KindExpense, rows[0].Kind)
	assert.Equal(t, "Maria", rows[0].PersonName)
	assert.Equal(t, "Alimentação", rows[0].CategoryName)

	assert.Equal(t, "Salário Agosto", rows[1].Description)
	assert.Equal(t, int64(125000), rows[1].Amount)
	assert.Equal(t, transaction.KindIncome, rows[1].Kind)

	assert.Equal(t, "Passe escolar", rows[2].Description)
	assert.Equal(t, int64(3000), rows[2].Amount)
	assert.Equal(t, transaction.KindExpense, rows[2].Kind)
	assert.Equal(t, "Tomás", rows[2].PersonName)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Montante;Categoria;Pessoa;Descrição;Extra
-10,00;Lazer;Rui;Cinema;XXX
`

	p := ledgercsv.NewParser()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Cinema", rows[0].Description)
	assert.Equal(t, int64(1000), rows[0].Amount)
	assert.Equal(t, transaction.KindExpense, rows[0].Kind)
	assert.Equal(t, "Rui", rows[0].PersonName)
	assert.Equal(t, "Lazer", rows[0].CategoryName)
}

func TestParser_Windows1252Encoding(t *testing.T) {
	utf8CSV := "Descrição;Montante;Pessoa;Categoria\nCafé da manhã;-4,50;João;Alimentação\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := ledgercsv.NewParser()
	rows, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Café da manhã", rows[0].Description)
	assert.Equal(t, "João", rows[0].PersonName)
}

func TestParser_SkipsBlankRows(t *testing.T) {
	csv := `Descrição;Montante;Pessoa;Categoria
Renda;-600,00;Maria;Habitação

;;;
`

	p := ledgercsv.NewParser()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Descrição;Montante;Pessoa;Categoria`

	p := ledgercsv.NewParser()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParser_NoHeader(t *testing.T) {
	p := ledgercsv.NewParser()
	_, err := p.Parse(strings.NewReader("apenas;lixo\n1;2\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no ledger header")
}

func TestParser_MissingPerson(t *testing.T) {
	csv := `Descrição;Montante;Pessoa;Categoria
Renda;-600,00;;Habitação
`

	p := ledgercsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "person")
}

func TestParser_BadAmount(t *testing.T) {
	csv := `Descrição;Montante;Pessoa;Categoria
Renda;muito;Maria;Habitação
`

	p := ledgercsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad amount")
}

func TestParser_ZeroAmountRejected(t *testing.T) {
	csv := `Descrição;Montante;Pessoa;Categoria
Acerto;0,00;Maria;Habitação
`

	p := ledgercsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "zero amount")
}

func TestParser_LargeAmounts(t *testing.T) {
	csv := `Descrição;Montante;Pessoa;Categoria
Venda da casa;1.234.567,89;Maria;Imóveis
`

	p := ledgercsv.NewParser()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(123456789), rows[0].Amount)
	assert.Equal(t, transaction.KindIncome, rows[0].Kind)
}
