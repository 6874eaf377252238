package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/mfreitas/contas/internal/encoding"
)

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Descrição;Montante;Tipo\nCafé;12,50;expense\n"
	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestNewUTF8Reader_UTF8BOMStripped(t *testing.T) {
	content := "Descrição;Montante\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)
	assert.Equal(t, content, readAll(t, input))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	enc, err := charmap.Windows1252.NewEncoder().Bytes([]byte("Descrição;Montante\n"))
	require.NoError(t, err)

	assert.Equal(t, "Descrição;Montante\n", readAll(t, enc))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	enc, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().
		Bytes([]byte("Pessoa;Categoria\n"))
	require.NoError(t, err)

	assert.Equal(t, "Pessoa;Categoria\n", readAll(t, enc))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", readAll(t, nil))
}
