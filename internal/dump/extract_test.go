package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "dump row",
			line: "/type/author\t/authors/OL1A\t1\t2008-04-01T03:28:50.625462\t{\"key\":\"/authors/OL1A\"}",
			want: `{"key":"/authors/OL1A"}`,
		},
		{
			name: "arbitrary prefix",
			line: `xxx{"key":"/works/OL1W"}`,
			want: `{"key":"/works/OL1W"}`,
		},
		{
			name: "starts with payload",
			line: `{"a":{"b":1}}`,
			want: `{"a":{"b":1}}`,
		},
		{
			name: "payload runs to end of line",
			line: `p {"a":1} trailing`,
			want: `{"a":1} trailing`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPayload(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPayload_NoBrace(t *testing.T) {
	for _, line := range []string{"", "no json here", "/type/author\t/authors/OL1A"} {
		_, err := ExtractPayload(line)
		assert.ErrorIs(t, err, ErrNoPayload, "line %q", line)
	}
}
