package filetree

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// Extractor returns the decoded text content of a file entry.
type Extractor interface {
	ExtractText(file *File) (string, error)
}

// FSExtractor reads file content from an already extracted archive.
type FSExtractor struct {
	FS fs.FS
}

// ExtractText reads file.Source and decodes it to a string with "\n" line endings.
func (x FSExtractor) ExtractText(file *File) (string, error) {
	if file == nil {
		return "", fmt.Errorf(messages.FileTreeExtractNilFile)
	}
	if x.FS == nil {
		return "", fmt.Errorf(messages.FileTreeExtractNoFS)
	}
	data, err := fs.ReadFile(x.FS, file.Source)
	if err != nil {
		return "", fmt.Errorf(messages.FileTreeExtractFailedFmt, file.Path(), err)
	}
	text, err := DecodeText(data)
	if err != nil {
		return "", fmt.Errorf(messages.FileTreeDecodeFailedFmt, file.Path(), err)
	}
	return text, nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText decodes text written by Windows-era packaging tools.
// UTF-8 (with or without BOM) and UTF-16 with a BOM are honoured; anything
// else that is not valid UTF-8 is read as Windows-1252.
func DecodeText(data []byte) (string, error) {
	var text string
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		text = string(data[len(bomUTF8):])
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		text = string(decoded)
	case utf8.Valid(data):
		text = string(data)
	default:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		text = string(decoded)
	}
	return strings.ReplaceAll(text, "\r\n", "\n"), nil
}
