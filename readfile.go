package lyxweaver

import (
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadProjectFile reads a document file and returns its decoded text.
// Files that are not valid UTF-8 are re-decoded as ISO 8859-1, which is
// what LyX wrote before it switched to unicode.
func ReadProjectFile(path string) (string, error) {
	return readProjectFile(path, true)
}

func readProjectFile(path string, latin1Fallback bool) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if utf8.Valid(raw) || !latin1Fallback {
		return string(raw), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(decoded), nil
}
