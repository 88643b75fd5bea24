package csvkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, int64(1500), ParseAmount("1,500"))
	assert.Equal(t, int64(1234567), ParseAmount("1,234,567"))
	assert.Equal(t, int64(980), ParseAmount(" 980 "))
	assert.Equal(t, int64(0), ParseAmount(""))
	assert.Equal(t, int64(0), ParseAmount("n/a"))
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 3, ParseQuantity("3"))
	assert.Equal(t, 1200, ParseQuantity("1,200"))
	assert.Equal(t, 0, ParseQuantity(""))
	assert.Equal(t, 0, ParseQuantity("abc"))
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2024-1-5", "2024-01-05"},
		{"2024/1/5", "2024-01-05"},
		{"2024/12/31", "2024-12-31"},
		{"1/5/2024", "2024-01-05"},
		{"12/31/2024", "2024-12-31"},
		{"2024年1月5日", "2024年1月5日"},
		{"not a date", "not a date"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDate(tc.raw), "raw %q", tc.raw)
	}
}

func TestDecodeTextUTF8PassThrough(t *testing.T) {
	text, err := DecodeText([]byte("code,name\nP-1,ウィジェット\n"))
	assert.NoError(t, err)
	assert.Equal(t, "code,name\nP-1,ウィジェット\n", text)
}

func TestDecodeTextStripsBOM(t *testing.T) {
	text, err := DecodeText(append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b")...))
	assert.NoError(t, err)
	assert.Equal(t, "a,b", text)
}

func TestDecodeTextShiftJIS(t *testing.T) {
	// "商品" in Shift_JIS.
	raw := []byte{0x8F, 0xA4, 0x95, 0x69}
	text, err := DecodeText(raw)
	assert.NoError(t, err)
	assert.Equal(t, "商品", text)
}
