package dump

import (
	"errors"
	"strings"
)

// ErrNoPayload means a dump line has no '{' and so carries no JSON record.
var ErrNoPayload = errors.New("line has no json payload")

// ExtractPayload returns the JSON text of a dump line: everything from the
// first '{' to the end of the line. The tab-separated type, key, revision and
// timestamp columns in front of it are discarded.
func ExtractPayload(line string) (string, error) {
	i := strings.IndexByte(line, '{')
	if i < 0 {
		return "", ErrNoPayload
	}
	return line[i:], nil
}
