// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/types"
	"github.com/civixgo/civix/pkg/ui/styles"
)

// levelStyles maps report levels to style names
var levelStyles = map[types.ReportLevel]string{
	types.LevelInfo:    "Info",
	types.LevelComment: "Comment",
	types.LevelError:   "Error",
}

// Renderer styles each report line by its level
type Renderer struct {
	output io.Writer
	styles styles.Registry
}

// New creates a new terminal renderer using the default styles
func New(w io.Writer) *Renderer {
	return &Renderer{output: w, styles: styles.Default()}
}

// RenderReport renders every report line styled by level
func (r *Renderer) RenderReport(report *types.Report) error {
	for _, line := range report.Lines() {
		if _, err := fmt.Fprintln(r.output, r.styles.Render(levelStyles[line.Level], line.Message)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", r.styles.Render("Error", "Error:"), errors.Message(err))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
