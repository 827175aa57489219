package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "hello", width: 5, want: "hello"},
		{name: "cut", in: "hello world", width: 6, want: "hello…"},
		{name: "zero", in: "hello", width: 0, want: ""},
		{name: "only ellipsis", in: "hello", width: 1, want: "…"},
		{name: "wide runes", in: "日本語テキスト", width: 5, want: "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), max(tt.width, 0))
		})
	}
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcd…", PadRight("abcdefgh", 5))
	assert.Equal(t, "日本 ", PadRight("日本", 5))
}
