// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport writes one message per line
func (r *Renderer) RenderReport(report *types.Report) error {
	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(r.output, line.Message); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", errors.Message(err))
	return werr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
