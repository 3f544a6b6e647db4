package loader

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names accepted in configuration.
const (
	UTF8    = "utf-8"
	GBK     = "gbk"
	GB18030 = "gb18030"
	UTF16   = "utf-16"
	Latin1  = "latin-1"
)

// DefaultEncodings is the order in which decodings are attempted.
// Latin-1 accepts any byte sequence, so it must stay last.
func DefaultEncodings() []string {
	return []string{UTF8, GBK, GB18030, UTF16, Latin1}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decoder attempts a strict decode and reports whether it succeeded.
type decoder func(data []byte) (string, bool)

func lookup(name string) (decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case UTF8, "utf8":
		return decodeUTF8, nil
	case GBK, "gb2312":
		return strict(simplifiedchinese.GBK), nil
	case GB18030:
		return strict(simplifiedchinese.GB18030), nil
	case UTF16, "utf16":
		return strict(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)), nil
	case Latin1, "latin1", "iso-8859-1":
		return strict(charmap.ISO8859_1), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), true
}

// strict wraps an x/text encoding so that replacement characters in the
// output count as a failed decode. A document that encodes U+FFFD itself is
// rejected too and falls through to the next candidate. These decoders also
// accept many valid UTF-8 inputs, so UTF-8 should stay ahead of them in a
// custom order.
func strict(enc encoding.Encoding) decoder {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}
}
