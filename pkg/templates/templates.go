// Package templates selects and renders the templates civix writes into an
// extension.
//
// Templates are identified by an opaque ID. Most are text/template files
// embedded from the embedded/ directory; phpunit.xml.dist is built as an XML
// document. Callers only see the Renderer interface.
package templates

import (
	"bytes"
	"embed"
	"sort"
	"strings"
	"text/template"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/logging"
	"github.com/civixgo/civix/pkg/types"
)

// ID identifies one template
type ID string

const (
	PhpunitXML   ID = "phpunit.xml.dist"
	PhpunitBoot  ID = "phpunit-boot-cv.php"
	TestHeadless ID = "test-headless.php"
	TestE2E      ID = "test-e2e.php"
	TestLegacy   ID = "test-legacy.php"
)

// Renderer turns a template and a context into file contents
type Renderer interface {
	Render(id ID, ctx types.Context) (string, error)
}

// BuildFunc produces file contents without a text template
type BuildFunc func(ctx types.Context) (string, error)

//go:embed embedded/*.tmpl
var embeddedFS embed.FS

// Engine is the default Renderer
type Engine struct {
	tmpl     *template.Template
	builders map[ID]BuildFunc
}

// NewEngine parses the embedded templates and registers the builtin builders
func NewEngine() (*Engine, error) {
	tmpl, err := template.New("civix").
		ParseFS(embeddedFS, "embedded/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse embedded templates")
	}

	return &Engine{
		tmpl: tmpl,
		builders: map[ID]BuildFunc{
			PhpunitXML: BuildPhpunitXML,
		},
	}, nil
}

// Render renders the template id with ctx
func (e *Engine) Render(id ID, ctx types.Context) (string, error) {
	logger := logging.GetLogger("templates")
	logger.Debug().Str("template", string(id)).Strs("contextKeys", ctx.Keys()).Msg("Rendering template")

	if build, ok := e.builders[id]; ok {
		out, err := build(ctx)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrRender, "failed to render %s", id).
				WithDetail("template", string(id))
		}
		return out, nil
	}

	t := e.tmpl.Lookup(string(id) + ".tmpl")
	if t == nil {
		return "", errors.Newf(errors.ErrRender, "template %s not found", id).
			WithDetails(map[string]interface{}{
				"template": string(id),
				"known":    e.IDs(),
			})
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx.Map()); err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render %s", id).
			WithDetail("template", string(id))
	}
	return buf.String(), nil
}

// IDs returns every template id the engine can render, sorted
func (e *Engine) IDs() []ID {
	var ids []ID
	for _, t := range e.tmpl.Templates() {
		if name := t.Name(); strings.HasSuffix(name, ".tmpl") {
			ids = append(ids, ID(strings.TrimSuffix(name, ".tmpl")))
		}
	}
	for id := range e.builders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
