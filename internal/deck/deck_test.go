package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Slide
	}{
		{
			name:    "title body and notes",
			content: "# Intro\n\nHello\n\n## Speaker Notes\n\nSay hi.\n",
			want:    Slide{Title: "Intro", Body: "# Intro\n\nHello", Notes: "Say hi."},
		},
		{
			name:    "no notes",
			content: "\n# Only body\ntext\n",
			want:    Slide{Title: "Only body", Body: "# Only body\ntext"},
		},
		{
			name:    "empty body",
			content: "   \n## Speaker Notes\nnotes only",
			want:    Slide{Title: DefaultTitle, Notes: "notes only"},
		},
		{
			name:    "first line without heading",
			content: "plain first line\nsecond",
			want:    Slide{Title: "plain first line", Body: "plain first line\nsecond"},
		},
		{
			name:    "split at first marker only",
			content: "# A\n## Speaker Notes\none\n## Speaker Notes\ntwo",
			want:    Slide{Title: "A", Body: "# A", Notes: "one\n## Speaker Notes\ntwo"},
		},
		{
			name:    "crlf line endings",
			content: "# Title\r\nline one\r\n\r\n## Speaker Notes\r\nfirst\r\nsecond\r\n",
			want:    Slide{Title: "Title", Body: "# Title\nline one", Notes: "first\nsecond"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.content))
		})
	}
}

func TestLoadSortsAndSkipsUnderscoreFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "02-second.md", "# Second")
	writeFile(t, dir, "01-first.md", "# First\n## Speaker Notes\nremember")
	writeFile(t, dir, "_draft.md", "# Draft")
	writeFile(t, dir, "_title.md", "  My Talk \n")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0o755))

	d, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "My Talk", d.Title)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "01-first.md", d.Slides[0].Filename)
	assert.Equal(t, "First", d.Slides[0].Title)
	assert.Equal(t, "remember", d.Slides[0].Notes)
	assert.Equal(t, "Second", d.Slides[1].Title)
	assert.Equal(t, 1, d.Last())
}

func TestLoadEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "_title.md", "Nothing here")

	_, err := Load(dir)
	require.ErrorIs(t, err, ErrNoSlidesFound)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSlidesFound)
}

func TestSlideClampsIndex(t *testing.T) {
	d := Deck{Slides: []Slide{{Title: "a"}, {Title: "b"}}}
	assert.Equal(t, "a", d.Slide(-3).Title)
	assert.Equal(t, "b", d.Slide(9).Title)
	assert.Equal(t, DefaultTitle, Deck{}.Slide(0).Title)
}
