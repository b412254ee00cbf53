package mdhtml

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateInputRejects(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   error
		offset int
	}{
		{name: "invalid utf-8", data: []byte("ok \xff\xfe"), want: ErrInvalidUTF8, offset: 3},
		{name: "truncated rune", data: []byte("caf\xc3"), want: ErrInvalidUTF8, offset: 3},
		{name: "nul byte", data: append([]byte("hello"), 0x00), want: ErrBinaryInput, offset: 5},
		{name: "control heavy", data: bytes.Repeat([]byte("abcdefg\x01"), 10), want: ErrBinaryInput, offset: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateInput(tc.data)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected *InputError, got %T", err)
			}
			if inputErr.Offset != tc.offset {
				t.Fatalf("offset: got %d want %d", inputErr.Offset, tc.offset)
			}
		})
	}
}

func TestInputErrorMessage(t *testing.T) {
	err := ValidateInput([]byte("ab\x00"))
	if got, want := err.Error(), "binary input detected at byte 2"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestValidateInputAcceptsMarkdown(t *testing.T) {
	data := []byte("# Title\r\n\n\t- item\n|a|b|\n\u00e9\ufffd\n")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConvertRejectsBinary(t *testing.T) {
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Reader: strings.NewReader("ok\x00"),
		Writer: &out,
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.String())
	}
}
