package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tillbook/internal/encoding"
)

func readAll(t *testing.T, in []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Ürün;Stok\nŞeker;12\nÇay;3\n"
	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestNewUTF8Reader_Windows1254(t *testing.T) {
	// "Ürün;Şeker\n" in Windows-1254: Ü=0xDC ü=0xFC Ş=0xDE
	input := []byte{
		0xDC, 'r', 0xFC, 'n', ';',
		0xDE, 'e', 'k', 'e', 'r', '\n',
	}

	assert.Equal(t, "Ürün;Şeker\n", readAll(t, input))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Ürün;Stok\n")...)
	assert.Equal(t, "Ürün;Stok\n", readAll(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	// "Ab" with a little-endian BOM.
	input := []byte{0xFF, 0xFE, 'A', 0x00, 'b', 0x00}
	assert.Equal(t, "Ab", readAll(t, input))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Empty(t, readAll(t, nil))
}

func TestIsText(t *testing.T) {
	assert.True(t, encoding.IsText(".csv"))
	assert.True(t, encoding.IsText(".txt"))
	assert.False(t, encoding.IsText(".xlsx"))
	assert.False(t, encoding.IsText(""))
}
