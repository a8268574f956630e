package ics

import (
	"bufio"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingCP1252
	EncodingLatin1
)

func (e Encoding) String() string {
	switch e {
	case EncodingCP1252:
		return "Windows-1252"
	case EncodingLatin1:
		return "Latin-1"
	default:
		return "UTF-8"
	}
}

// DetectEncoding sniffs a sample of the input. Calendar exports from
// older desktop apps are the usual non-UTF8 source.
func DetectEncoding(data []byte) Encoding {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return EncodingUTF8 // UTF-8 BOM
	}
	if utf8.Valid(data) {
		return EncodingUTF8
	}
	// Bytes in 0x80-0x9F are valid CP1252 but undefined in Latin-1.
	for _, b := range data {
		if b >= 0x80 && b <= 0x9F {
			return EncodingCP1252
		}
	}
	return EncodingLatin1
}

// TranscodeToUTF8 wraps r so its contents read as UTF-8.
func TranscodeToUTF8(r io.Reader) (io.Reader, Encoding, error) {
	buf := bufio.NewReader(r)
	peek, err := buf.Peek(512)
	if err != nil && err != io.EOF {
		return nil, EncodingUTF8, err
	}

	enc := DetectEncoding(peek)
	switch enc {
	case EncodingCP1252:
		return transform.NewReader(buf, charmap.Windows1252.NewDecoder()), enc, nil
	case EncodingLatin1:
		return transform.NewReader(buf, charmap.ISO8859_1.NewDecoder()), enc, nil
	default:
		return buf, enc, nil
	}
}
