package filetree

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{name: "utf8", data: []byte("Core\nHigh"), want: "Core\nHigh"},
		{name: "utf8 bom crlf", data: []byte("\xEF\xBB\xBFCore\r\nHigh"), want: "Core\nHigh"},
		{name: "utf16 le", data: []byte{0xFF, 0xFE, 'O', 0, 'k', 0}, want: "Ok"},
		{name: "utf16 be", data: []byte{0xFE, 0xFF, 0, 'O', 0, 'k'}, want: "Ok"},
		{name: "windows-1252", data: []byte("Caf\xE9 \x96 ok"), want: "Café – ok"},
		{name: "empty", data: []byte{}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeText(tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFSExtractor(t *testing.T) {
	fsys := fstest.MapFS{"package.txt": {Data: []byte("\xEF\xBB\xBFOptions\r\n")}}
	root := NewRoot()
	file := root.AddFile("package.txt", "package.txt")

	text, err := FSExtractor{FS: fsys}.ExtractText(file)
	require.NoError(t, err)
	assert.Equal(t, "Options\n", text)
}

func TestFSExtractorErrors(t *testing.T) {
	root := NewRoot()
	missing := root.AddFile("package.txt", "package.txt")

	_, err := FSExtractor{FS: fstest.MapFS{}}.ExtractText(missing)
	assert.Error(t, err)

	_, err = FSExtractor{}.ExtractText(missing)
	assert.Error(t, err)

	_, err = FSExtractor{FS: fstest.MapFS{}}.ExtractText(nil)
	assert.Error(t, err)
}
