package search

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var (
	// ErrInvalidUTF8 is returned when a file read without an explicit
	// encoding is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrUnknownEncoding is returned for an encoding label htmlindex does not know.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// ReadFile reads the whole file at path into memory. An empty encoding or
// "utf-8" keeps the bytes as they are; any other WHATWG label (latin1,
// windows-1251, utf-16le, ...) is decoded to UTF-8 first.
func ReadFile(path, encoding string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("file path is empty")
	}
	label := strings.ToLower(strings.TrimSpace(encoding))
	if label == "" || label == "utf-8" || label == "utf8" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
		}
		return string(b), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownEncoding, encoding)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decode %s as %s: %w", path, label, err)
	}
	return string(b), nil
}
