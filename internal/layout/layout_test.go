package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termdeck/internal/textfit"
)

var bodies = []string{
	"",
	"# Title\n\nshort",
	"# Wide\n测试 wide glyphs 测试测试测试测试测试测试测试测试测试测试测试测试",
	"```\n┌────┐\n│ box │\n└────┘\n```",
	strings.Repeat("a very long line that will not fit anywhere near a narrow terminal ", 4),
	"tabs\tand  spaces\n\n\n",
}

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no fence", "# T\nbody", "# T\nbody"},
		{"fenced", "# T\n```\nart 1\n  art 2\n```\ntrailing", "art 1\n  art 2"},
		{"language tag and indent", "  ```text\nx\n  ```", "x"},
		{"first block only", "```\none\n```\n```\ntwo\n```", "one"},
		{"unterminated", "intro\n```\nrest\nof it", "rest\nof it"},
		{"empty block", "# T\n```\n```", "# T\n```\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractContent(tt.body))
		})
	}
}

func TestPrepareExactWidth(t *testing.T) {
	for _, body := range bodies {
		for w := 1; w <= 100; w += 3 {
			for _, line := range Prepare(ExtractContent(body), w) {
				require.Equal(t, w, textfit.DisplayWidth(line), "width %d, body %q, line %q", w, body, line)
			}
		}
	}
}

func TestPrepareIsPure(t *testing.T) {
	for _, body := range bodies {
		assert.Equal(t, Prepare(body, 40), Prepare(body, 40))
	}
}

func TestPrepareCentersBlockByDisplayWidth(t *testing.T) {
	lines := Prepare("测试\nabcdef", 10)
	require.Len(t, lines, 2)
	// Widest line is 6 columns, so the block starts at column 2.
	assert.Equal(t, "  测试    ", lines[0])
	assert.Equal(t, "  abcdef  ", lines[1])
}

func TestPrepareTruncatesWideContent(t *testing.T) {
	lines := Prepare("0123456789ABCDEF\nshort", 8)
	assert.Equal(t, []string{"0123456…", "short   "}, lines)
}

func TestPrepareNonPositiveWidth(t *testing.T) {
	assert.Nil(t, Prepare("anything", 0))
}

func TestFit(t *testing.T) {
	body := "```\n1\n2\n3\n4\n5\n```"

	r := Fit(body, 80, 23)
	assert.False(t, r.NeedsScroll)
	assert.Equal(t, 5, r.TotalLines)
	assert.Equal(t, 0, r.MaxScroll())
	assert.Equal(t, r.Lines, r.Visible(7))

	r = Fit(body, 80, 2)
	require.True(t, r.NeedsScroll)
	assert.Equal(t, 3, r.MaxScroll())
	assert.Equal(t, 0, r.ClampScroll(-4))
	assert.Equal(t, 3, r.ClampScroll(99))
	assert.Equal(t, r.Lines[3:5], r.Visible(99))

	r = Fit(body, 80, -5)
	assert.Equal(t, 1, r.Available)
}
