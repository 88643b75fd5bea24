package csvkit

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// DecodeText converts an uploaded CSV payload to UTF-8 text. Cart and WMS
// exports are conventionally Shift_JIS but newer systems produce UTF-8, so
// valid UTF-8 input (BOM stripped) is taken as-is and everything else goes
// through the Shift_JIS decoder.
func DecodeText(raw []byte) (string, error) {
	raw = stripBOM(raw)
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func stripBOM(raw []byte) []byte {
	if len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF {
		return raw[3:]
	}
	return raw
}
