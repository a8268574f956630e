package ics

import (
	"io"
	"strings"
	"testing"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Encoding
	}{
		{"plain ascii", []byte("BEGIN:VCALENDAR"), EncodingUTF8},
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, EncodingUTF8},
		{"valid utf8 multibyte", []byte("caf\xc3\xa9"), EncodingUTF8},
		{"cp1252 smart quote", []byte{'a', 0x93, 'b'}, EncodingCP1252},
		{"latin1 accent", []byte{'c', 'a', 'f', 0xE9}, EncodingLatin1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEncoding(tt.data); got != tt.want {
				t.Errorf("DetectEncoding = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTranscodeLatin1(t *testing.T) {
	// "café" in Latin-1.
	in := string([]byte{'c', 'a', 'f', 0xE9})
	r, enc, err := TranscodeToUTF8(strings.NewReader(in))
	if err != nil {
		t.Fatalf("TranscodeToUTF8 failed: %v", err)
	}
	if enc != EncodingLatin1 {
		t.Errorf("encoding = %s, want Latin-1", enc)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(out) != "café" {
		t.Errorf("transcoded = %q", out)
	}
}

func TestTranscodeCP1252(t *testing.T) {
	// Curly quotes around "hi" in CP1252.
	in := string([]byte{0x93, 'h', 'i', 0x94})
	r, enc, err := TranscodeToUTF8(strings.NewReader(in))
	if err != nil {
		t.Fatalf("TranscodeToUTF8 failed: %v", err)
	}
	if enc != EncodingCP1252 {
		t.Errorf("encoding = %s, want Windows-1252", enc)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(out) != "“hi”" {
		t.Errorf("transcoded = %q", out)
	}
}

func TestTranscodeUTF8Passthrough(t *testing.T) {
	r, enc, err := TranscodeToUTF8(strings.NewReader("plain"))
	if err != nil {
		t.Fatalf("TranscodeToUTF8 failed: %v", err)
	}
	if enc != EncodingUTF8 {
		t.Errorf("encoding = %s, want UTF-8", enc)
	}
	out, _ := io.ReadAll(r)
	if string(out) != "plain" {
		t.Errorf("passthrough = %q", out)
	}
}
