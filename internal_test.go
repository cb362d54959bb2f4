package gridfmt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestSplitRow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		give string
		want []string
	}{
		{"two space gap", "a  b", []string{"a", "b"}},
		{"tab gap", "a\t\tb", []string{"a", "b"}},
		{"single space preserved", "one two  three", []string{"one two", "three"}},
		{"trailing whitespace stripped", "a  b   ", []string{"a", "b"}},
		{"inner pipes", "a | b | c", []string{"a", "b", "c"}},
		{"outer pipes stripped", "| a | b |", []string{"a", "b"}},
		{"outer pipes with margin", "  | a | b |  ", []string{"a", "b"}},
		{"pipe without spaces", "a|b", []string{"a", "b"}},
		{"trailing pipe only", "baz |", []string{"baz"}},
		{"empty line", "", []string{""}},
		{"lone pipe", "|", []string{""}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitRow(tt.give))
		})
	}
}

func TestSplitRowNeverEmpty(t *testing.T) {
	t.Parallel()
	for _, line := range []string{"", " ", "|", "a", "a  b"} {
		assert.NotEmpty(t, splitRow(line), "line %q", line)
	}
}

func TestIsSeparator(t *testing.T) {
	t.Parallel()
	tests := []struct {
		give string
		want bool
	}{
		{"----", true},
		{"====", true},
		{"+---+---+", true},
		{"+===+===+", true},
		{"  -- ==  ", true},
		{"\t-\t", true},
		{" ", true},
		{"", false},
		{"--x--", false},
		{"| a | b |", false},
		{"a  b", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isSeparator(tt.give), "line %q", tt.give)
	}
}

func TestPartitionWithoutSeparators(t *testing.T) {
	t.Parallel()
	got := partition([]string{"a  b", "c  d"})
	assert.Equal(t, [][]string{{"a  b"}, {"c  d"}}, got)
}

func TestPartitionWithSeparators(t *testing.T) {
	t.Parallel()
	got := partition([]string{
		"----",
		"a",
		"b",
		"====",
		"----",
		"c",
		"----",
	})
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, got)
}

func TestJoinColumns(t *testing.T) {
	t.Parallel()
	got := joinColumns([]string{"foo | bar", "baz |"})
	assert.Equal(t, []string{"foo\nbaz", "bar"}, got)
}

func TestJoinColumnsBlankFieldsSkipped(t *testing.T) {
	t.Parallel()
	got := joinColumns([]string{"a |  | c", "aa | b | cc"})
	assert.Equal(t, []string{"a\naa", "b", "c\ncc"}, got)
}

func TestUnifyPadsAndPrunes(t *testing.T) {
	t.Parallel()
	got := unify(Table{
		{"a", "", "x"},
		{"bb"},
	})
	assert.Equal(t, Table{{"a", "x"}, {"bb", ""}}, got)
}

func TestColumnWidthsRagged(t *testing.T) {
	t.Parallel()
	got := columnWidths(Table{{"a"}, {"bb", "ccc"}})
	assert.Equal(t, []int{2, 3}, got)
}

func TestColumnWidthsMultiLineCell(t *testing.T) {
	t.Parallel()
	got := columnWidths(Table{{"foo\nlonger", "x"}})
	assert.Equal(t, []int{6, 1}, got)
}

func TestCellWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, cellWidth(""))
	assert.Equal(t, 3, cellWidth("abc"))
	assert.Equal(t, 5, cellWidth("ab\nabcde\nc"))
	// Full-width runes occupy two display columns.
	assert.Equal(t, 4, cellWidth("你好"))
}

func TestBorderLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "+===+====+", borderLine([]int{1, 2}, '='))
	assert.Equal(t, "+---+", borderLine([]int{1}, '-'))
	assert.Equal(t, "", borderLine(nil, '-'))
}

func TestRowLines(t *testing.T) {
	t.Parallel()
	got := rowLines([]string{"foo\nbaz", "bar"})
	assert.Equal(t, [][]string{{"foo", "bar"}, {"baz", ""}}, got)
}

func TestRowLinesSingle(t *testing.T) {
	t.Parallel()
	got := rowLines([]string{"a", "b"})
	assert.Equal(t, [][]string{{"a", "b"}}, got)
}

func TestPadCells(t *testing.T) {
	t.Parallel()
	got := padCells([]string{"a", "bb"}, []int{3, 2})
	assert.Equal(t, []string{" a   ", " bb "}, got)
}

func TestWrapCellKeepsExistingBreaks(t *testing.T) {
	t.Parallel()
	got := wrapCell("short\nsomething longer here", 10)
	assert.Equal(t, "short\nsomething\nlonger\nhere", got)
}

func TestWrapCellNoopWhenNarrow(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "fits", wrapCell("fits", 10))
}

func TestWriteGridError(t *testing.T) {
	t.Parallel()
	err := Write(&errWriterInternal{}, Grid, Table{{"a"}})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteMarkdownError(t *testing.T) {
	t.Parallel()
	err := writeMarkdown(&errWriterInternal{}, Table{{"a"}})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteCSVError(t *testing.T) {
	t.Parallel()
	err := writeCSV(&errWriterInternal{}, Table{{"a"}})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteMarkdownEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, writeMarkdown(&buf, nil))
	assert.Zero(t, buf.Len())
}
