package dump

import (
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seq iter.Seq2[string, error]) []string {
	t.Helper()
	var out []string
	for line, err := range seq {
		require.NoError(t, err)
		out = append(out, line)
	}
	return out
}

func TestLines(t *testing.T) {
	got := collect(t, Lines(strings.NewReader("a\nb\r\n\nc")))
	assert.Equal(t, []string{"a", "b", "", "c"}, got)
}

func TestLines_Empty(t *testing.T) {
	assert.Empty(t, collect(t, Lines(strings.NewReader(""))))
}

func TestLines_StopsEarly(t *testing.T) {
	var got []string
	for line := range Lines(strings.NewReader("a\nb\nc\n")) {
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

type failingReader struct{ read bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, "first\n"), nil
	}
	return 0, errors.New("disk gone")
}

func TestLines_ReadError(t *testing.T) {
	var (
		lines []string
		errs  []error
	)
	for line, err := range Lines(&failingReader{}) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"first"}, lines)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "disk gone")
}

func TestLines_OversizedLineIsSkipped(t *testing.T) {
	src := "short\n" + strings.Repeat("x", 40) + "\nafter\n" + strings.Repeat("y", 40)

	var (
		got  []string
		errs []error
	)
	for line, err := range lines(strings.NewReader(src), 10) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, line)
	}

	assert.Equal(t, []string{"short", "after"}, got)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], ErrLineTooLong)
	assert.ErrorIs(t, errs[1], ErrLineTooLong)
}

func TestLines_LongLineWithinLimit(t *testing.T) {
	long := strings.Repeat("z", 200*1024)
	got := collect(t, Lines(strings.NewReader("a\n"+long+"\r\nb")))
	assert.Equal(t, []string{"a", long, "b"}, got)
}

func TestLimit_CountsOversizedLines(t *testing.T) {
	src := "1\n" + strings.Repeat("x", 40) + "\n3\n4\n"

	var (
		got     []string
		tooLong int
	)
	for line, err := range Limit(lines(strings.NewReader(src), 10), 3) {
		if errors.Is(err, ErrLineTooLong) {
			tooLong++
			continue
		}
		require.NoError(t, err)
		got = append(got, line)
	}

	assert.Equal(t, []string{"1", "3"}, got)
	assert.Equal(t, 1, tooLong)
}

func TestLimit(t *testing.T) {
	src := "1\n2\n3\n4\n5\n"

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"bounded", 3, []string{"1", "2", "3"}},
		{"limit above length", 50, []string{"1", "2", "3", "4", "5"}},
		{"zero is unbounded", 0, []string{"1", "2", "3", "4", "5"}},
		{"negative is unbounded", -1, []string{"1", "2", "3", "4", "5"}},
		{"one", 1, []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, Limit(Lines(strings.NewReader(src)), tt.limit))
			assert.Equal(t, tt.want, got)
		})
	}
}
