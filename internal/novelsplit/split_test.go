package novelsplit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	hyphens := strings.Repeat("-", 30)
	dashes := strings.Repeat("—", 10)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "hyphen rule",
			text: "第一章 七星鲁王宫\n" + hyphens + "\n第二章 血尸",
			want: []string{"第一章 七星鲁王宫", "第二章 血尸"},
		},
		{
			name: "em dash rule and blanks",
			text: "\n\n" + dashes + "  chapter one  " + dashes + "\n \n" + dashes + "chapter two\n",
			want: []string{"chapter one", "chapter two"},
		},
		{
			name: "short rules are text",
			text: "a " + strings.Repeat("-", 29) + " b " + strings.Repeat("—", 9) + " c",
			want: []string{"a " + strings.Repeat("-", 29) + " b " + strings.Repeat("—", 9) + " c"},
		},
		{
			name: "empty",
			text: "   ",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestSplitFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "daomubiji.txt")
	text := "one\n" + strings.Repeat("-", 40) + "\ntwo\n" + strings.Repeat("-", 40) + "\nthree"
	require.NoError(t, os.WriteFile(input, []byte(text), 0o600))

	out := filepath.Join(dir, "output")
	paths, err := SplitFile(input, out)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, want := range []string{"one", "two", "three"} {
		assert.Equal(t, filepath.Join(out, []string{"1.txt", "2.txt", "3.txt"}[i]), paths[i])
		got, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}

func TestSplitFile_MissingInput(t *testing.T) {
	_, err := SplitFile(filepath.Join(t.TempDir(), "missing.txt"), t.TempDir())
	assert.Error(t, err)
}
