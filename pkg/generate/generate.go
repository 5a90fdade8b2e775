package generate

import (
	"io/fs"

	"github.com/civixgo/civix/pkg/dirs"
	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/identifier"
	"github.com/civixgo/civix/pkg/layout"
	"github.com/civixgo/civix/pkg/logging"
	"github.com/civixgo/civix/pkg/manifest"
	"github.com/civixgo/civix/pkg/templates"
	"github.com/civixgo/civix/pkg/types"
	"github.com/rs/zerolog"
)

// FilePerm is the mode of every generated file
const FilePerm fs.FileMode = 0644

// ArtifactKind names one of the files a generation produces
type ArtifactKind string

const (
	ArtifactConfig    ArtifactKind = "config"
	ArtifactBootstrap ArtifactKind = "bootstrap"
	ArtifactTest      ArtifactKind = "test"
)

// Artifact is a file the generator intends to write. Dir is ensured
// before Path is written.
type Artifact struct {
	Kind     ArtifactKind
	Path     string
	Dir      string
	Template templates.ID
	Context  types.Context
}

// Request describes one generate:test invocation
type Request struct {
	// FullName is the test class name as typed by the user
	FullName string
	// Template is the test template keyword (headless, e2e, legacy)
	Template string
	// Root is the extension base directory. Defaults to the context's basedir.
	Root string
	// Context carries the facts loaded from the extension manifest
	Context types.Context
}

// Generator writes test scaffolding through a filesystem and a renderer
type Generator struct {
	fs       types.FS
	renderer templates.Renderer
	logger   zerolog.Logger
}

// New creates a Generator
func New(fsys types.FS, renderer templates.Renderer) *Generator {
	return &Generator{
		fs:       fsys,
		renderer: renderer,
		logger:   logging.GetLogger("generate"),
	}
}

// Generate writes the configuration, bootstrap and test files for req.
//
// The returned report is never nil. An error is returned when the project
// is not a module, when the class name or template keyword is rejected, or
// when writing an artifact fails. An already existing test file is only
// recorded in the report.
func (g *Generator) Generate(req Request) (*types.Report, error) {
	report := types.NewReport()

	ctx := req.Context
	root := req.Root
	if root == "" {
		root = ctx.String(types.ContextKeyBasedir)
	} else if ctx.String(types.ContextKeyBasedir) == "" {
		ctx = ctx.With(types.ContextKeyBasedir, root)
	}

	defer logging.LogOperationStart(g.logger, "generate:test")()
	g.logger.Debug().
		Str("root", root).
		Str("name", req.FullName).
		Str("template", req.Template).
		Msg("Generating test scaffolding")

	if projectType := ctx.String(types.ContextKeyType); projectType != manifest.TypeModule {
		err := errors.Newf(errors.ErrWrongProjectType, "Wrong extension type: %s", projectType).
			WithDetail("type", projectType)
		report.Aborted(errors.Message(err))
		return report, err
	}

	for _, a := range g.sharedArtifacts(root, ctx) {
		if err := g.writeShared(a, report); err != nil {
			return report, err
		}
	}

	test, err := g.testArtifact(req, root, ctx)
	if err != nil {
		report.Aborted(errors.Message(err))
		return report, err
	}
	if err := g.writeTest(test, report); err != nil {
		return report, err
	}

	g.logger.Info().
		Int("lines", report.Len()).
		Bool("hasErrors", report.HasErrors()).
		Msg("Generation finished")

	return report, nil
}

// sharedArtifacts returns the files every test in an extension relies on
func (g *Generator) sharedArtifacts(root string, ctx types.Context) []Artifact {
	return []Artifact{
		{
			Kind:     ArtifactConfig,
			Path:     layout.ConfigPath(root),
			Dir:      root,
			Template: templates.PhpunitXML,
			Context:  ctx,
		},
		{
			Kind:     ArtifactBootstrap,
			Path:     layout.BootstrapPath(root),
			Dir:      layout.TestRoot(root),
			Template: templates.PhpunitBoot,
			Context:  ctx,
		},
	}
}

// testArtifact validates the request and works out where the test goes
func (g *Generator) testArtifact(req Request, root string, ctx types.Context) (Artifact, error) {
	name, err := identifier.Validate(req.FullName)
	if err != nil {
		return Artifact{}, err
	}

	id, err := templates.Select(req.Template)
	if err != nil {
		return Artifact{}, err
	}

	res := layout.Resolve(name, root)
	g.logger.Debug().
		Str("class", res.Symbol).
		Str("namespace", res.Namespace).
		Str("path", res.FilePath).
		Msg("Resolved test class")

	return Artifact{
		Kind:     ArtifactTest,
		Path:     res.FilePath,
		Dir:      res.Dir(),
		Template: id,
		Context: ctx.Merge(map[string]interface{}{
			types.ContextKeyTestClass:     res.Symbol,
			types.ContextKeyTestNamespace: res.Namespace,
		}),
	}, nil
}

func (g *Generator) writeShared(a Artifact, report *types.Report) error {
	exists, err := g.exists(a.Path)
	if err != nil {
		return err
	}
	if exists {
		g.logger.Debug().Str("path", a.Path).Str("artifact", string(a.Kind)).Msg("Skipping existing file")
		report.Skipped(a.Path, types.LevelComment)
		return nil
	}

	if err := dirs.Ensure(g.fs, report, a.Dir); err != nil {
		return err
	}
	return g.write(a, report)
}

func (g *Generator) writeTest(a Artifact, report *types.Report) error {
	if err := dirs.Ensure(g.fs, report, a.Dir); err != nil {
		return err
	}

	exists, err := g.exists(a.Path)
	if err != nil {
		return err
	}
	if exists {
		g.logger.Warn().Str("path", a.Path).Msg("Test file already exists")
		report.Skipped(a.Path, types.LevelError)
		return nil
	}
	return g.write(a, report)
}

func (g *Generator) write(a Artifact, report *types.Report) error {
	content, err := g.renderer.Render(a.Template, a.Context)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrRender) {
			return err
		}
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s", a.Template).
			WithDetail("template", string(a.Template))
	}

	if err := g.fs.WriteFile(a.Path, []byte(content), FilePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "failed to write %s", a.Path).
			WithDetail("path", a.Path)
	}

	g.logger.Info().Str("path", a.Path).Str("artifact", string(a.Kind)).Msg("Wrote file")
	report.Wrote(a.Path)
	return nil
}

// exists checks the path right before it is used; results are never cached
func (g *Generator) exists(path string) (bool, error) {
	_, err := g.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFilesystem, "failed to stat %s", path).
		WithDetail("path", path)
}
