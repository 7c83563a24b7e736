package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// selectReader wraps r with decoder for detected encoding. Without BOM text
// is decoded with cp when specified, otherwise it is assumed to be UTF-8.
func selectReader(r io.Reader, enc srcEncoding, cp encoding.Encoding) io.Reader {
	switch enc {
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	}
	if cp != nil {
		return transform.NewReader(r, cp.NewDecoder())
	}
	return r
}

// ReadText reads whole text decoding it to UTF-8. Result has "\n" line
// endings and is NFC normalized.
func ReadText(r io.Reader, cp encoding.Encoding) (string, error) {
	br := bufio.NewReader(r)
	// short input is fine, it simply has no BOM
	head, _ := br.Peek(4)

	data, err := io.ReadAll(selectReader(br, detectUTF(head), cp))
	if err != nil {
		return "", fmt.Errorf("unable to decode text: %w", err)
	}
	return normalize(string(data)), nil
}

func normalize(text string) string {
	text = strings.ToValidUTF8(text, "�")
	return norm.NFC.String(newlines.Replace(text))
}
