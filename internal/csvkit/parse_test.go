package csvkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentQuoting(t *testing.T) {
	rows := ParseDocument(`a,"b,c","d""e"`)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "b,c", `d"e`}, rows[0])
}

func TestParseDocumentDropsBlankLines(t *testing.T) {
	withTrailing := ParseDocument("code,name\r\nP-1,Widget\r\n\r\n   \r\n")
	withoutTrailing := ParseDocument("code,name\r\nP-1,Widget")
	assert.Equal(t, withoutTrailing, withTrailing)
	assert.Len(t, withTrailing, 2)
}

func TestParseDocumentLineEndings(t *testing.T) {
	rows := ParseDocument("a,b\r\nc,d\ne,f")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"c", "d"}, rows[1])
	assert.Equal(t, []string{"e", "f"}, rows[2])
}

func TestParseDocumentUnterminatedQuote(t *testing.T) {
	rows := ParseDocument(`a,"unterminated`)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"a", "unterminated"}, rows[0])
}

func TestParseDocumentIsPure(t *testing.T) {
	input := "h1,h2\n\"x,y\",z\n"
	first := ParseDocument(input)
	second := ParseDocument(input)
	assert.Equal(t, first, second)
}

func TestField(t *testing.T) {
	row := []string{" a ", "b"}
	assert.Equal(t, "a", Field(row, 0))
	assert.Equal(t, "", Field(row, 5))
	assert.Equal(t, "", Field(row, -1))
}
