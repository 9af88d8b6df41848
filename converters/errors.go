// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/meshchan/core"
)

// ErrMalformed indicates that the text input does not follow the expected layout.
var ErrMalformed = errors.New("converters: malformed input")

// ErrUnrepresentable indicates a vertex ID or edge value that the target text
// form cannot carry without changing it on read.
var ErrUnrepresentable = errors.New("converters: unrepresentable token")

// checkTokens verifies every vertex ID and edge value of g against the
// reserved characters of one text form. Tokens must also not carry
// surrounding whitespace, which the readers trim.
func checkTokens(op string, g *core.Graph, reserved string) error {
	check := func(kind, tok string) error {
		if strings.ContainsAny(tok, reserved+"\r\n") || strings.TrimSpace(tok) != tok {
			return fmt.Errorf("%s: %s %q: %w", op, kind, tok, ErrUnrepresentable)
		}
		return nil
	}
	for _, id := range g.Vertices() {
		if err := check("vertex", id); err != nil {
			return err
		}
	}
	edges := g.Edges(false)
	for _, p := range g.SortedEdges() {
		if err := check("value of "+p.String(), edges[p]); err != nil {
			return err
		}
	}

	return nil
}

// malformedf wraps ErrMalformed with the operation and line number.
func malformedf(op string, line int, format string, args ...interface{}) error {
	return fmt.Errorf("%s: line %d: %s: %w", op, line, fmt.Sprintf(format, args...), ErrMalformed)
}
