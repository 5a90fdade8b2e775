package civix

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/civixgo/civix/internal/version"
	"github.com/civixgo/civix/pkg/cobrax/topics"
	"github.com/civixgo/civix/pkg/config"
	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/filesystem"
	"github.com/civixgo/civix/pkg/generate"
	"github.com/civixgo/civix/pkg/logging"
	"github.com/civixgo/civix/pkg/manifest"
	"github.com/civixgo/civix/pkg/paths"
	"github.com/civixgo/civix/pkg/templates"
	"github.com/civixgo/civix/pkg/types"
	"github.com/civixgo/civix/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed topics/*.md
var topicsFS embed.FS

// app holds what the commands share once flags are parsed
type app struct {
	verbosity int
	extDir    string
	format    string

	fs       types.FS
	paths    paths.Paths
	pathsErr error
	cfg      *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fsys types.FS) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fsys}

	rootCmd := &cobra.Command{
		Use:     "civix",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.extDir, "ext-dir", "", MsgFlagExtDir)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateTestCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(a))

	// Topic-based help, rendered from the embedded markdown
	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewMarkdownRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup configures logging, locates the extension and loads the
// configuration. A missing extension is kept in pathsErr so commands that
// do not need one still run.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logging.SetupLogger(logging.Options{
		Verbosity: a.verbosity,
		Console:   cmd.ErrOrStderr(),
	})

	a.paths, a.pathsErr = paths.New(a.fs, a.extDir)

	opts := config.Options{
		UserConfigPath: paths.UserConfigPath(),
		Overrides:      map[string]interface{}{},
	}
	if a.pathsErr == nil {
		opts.UserConfigPath = a.paths.UserConfigPath()
		opts.ExtConfigPath = a.paths.ExtConfigPath()
	}
	if cmd.Flags().Changed("format") {
		opts.Overrides["output.format"] = a.format
	}
	if cmd.Flags().Changed("template") {
		opts.Overrides["generate.test.template"], _ = cmd.Flags().GetString("template")
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Logging.File {
		logging.SetupLogger(logging.Options{
			Verbosity: a.verbosity,
			LogFile:   true,
			Console:   cmd.ErrOrStderr(),
		})
	}

	logging.LogCommand(cmd.CommandPath(), args)
	return nil
}

// renderer returns the report renderer for the configured format
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// reportError renders err in the configured output format and marks it as
// reported. JSON errors go to stdout next to the report; the other formats
// write to stderr. Errors that are already reported pass through.
func (a *app) reportError(cmd *cobra.Command, err error) error {
	if err == nil || IsReported(err) {
		return err
	}

	name := a.format
	if a.cfg != nil {
		name = a.cfg.Output.Format
	}
	format, perr := ui.ParseFormat(name)
	if perr != nil {
		format = ui.FormatText
	}

	w := cmd.ErrOrStderr()
	if format == ui.FormatJSON {
		w = cmd.OutOrStdout()
	}
	out, rerr := ui.NewRenderer(format, w)
	if rerr != nil {
		return err
	}
	if rerr := out.RenderError(err); rerr != nil {
		log.Debug().Err(rerr).Msg("Failed to render error")
		return err
	}
	return &reportedError{err: err}
}

func newGenerateTestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate:test " + MsgArgClassName,
		Aliases: []string{"generate-test"},
		Short:   MsgGenerateTestShort,
		Long:    MsgGenerateTestLong,
		Example: MsgGenerateTestExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.reportError(cmd, a.generateTest(cmd, args[0]))
		},
	}

	cmd.Flags().String("template", string(templates.DefaultKind), MsgFlagTemplate)
	_ = cmd.RegisterFlagCompletionFunc("template", cobra.FixedCompletions(
		templates.Keywords(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// generateTest scaffolds name into the current extension and renders the
// report. Abort lines and existing test files come back as reported errors.
func (a *app) generateTest(cmd *cobra.Command, name string) error {
	if a.pathsErr != nil {
		return a.pathsErr
	}
	extDir := a.paths.ExtDir()

	info, err := manifest.Load(a.fs, extDir)
	if err != nil {
		return err
	}

	engine, err := templates.NewEngine()
	if err != nil {
		return err
	}

	out, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	template := a.cfg.Generate.Test.Template
	logger := logging.WithFields(map[string]interface{}{
		"ext_dir":  extDir,
		"manifest": a.paths.ManifestPath(),
		"class":    name,
		"template": template,
	})
	logger.Info().Msg("Generating test")

	report, genErr := generate.New(a.fs, engine).Generate(generate.Request{
		FullName: name,
		Template: template,
		Root:     extDir,
		Context:  info.Context(extDir),
	})

	if err := out.RenderReport(report); err != nil {
		return err
	}

	switch {
	case genErr != nil && report.Count(types.LevelError, types.ActionAbort) > 0:
		return &reportedError{err: genErr}
	case genErr != nil:
		return genErr
	case report.HasErrors():
		return &reportedError{err: errors.New(errors.ErrInvalidInput, MsgErrReportErrors)}
	}
	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !initFile {
				out, err := config.Dump(a.cfg)
				if err != nil {
					return a.reportError(cmd, err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			return a.reportError(cmd, a.initConfig(cmd))
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)

	return cmd
}

// initConfig writes the starter user config unless one already exists
func (a *app) initConfig(cmd *cobra.Command) error {
	path := paths.UserConfigPath()
	if a.pathsErr == nil {
		path = a.paths.UserConfigPath()
	}

	report := types.NewReport()
	writeErr := config.WriteStarter(a.fs, report, path)

	out, err := a.renderer(cmd)
	if err != nil {
		return err
	}
	if err := out.RenderReport(report); err != nil {
		return err
	}
	return writeErr
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return errors.New(errors.ErrInternal, MsgErrHelpNotFound)
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		Args:    cobra.ExactArgs(1),
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := a.fs.MkdirAll(dir, 0755); err != nil {
				return a.reportError(cmd, errors.Wrapf(err, errors.ErrFilesystem, MsgErrManDirMissing, dir).
					WithDetail("path", dir))
			}

			header := &doc.GenManHeader{
				Title:   "CIVIX",
				Section: "1",
				Source:  "civix " + version.Version,
				Manual:  "civix manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return a.reportError(cmd, errors.Wrap(err, errors.ErrFilesystem, "failed to generate man pages").
					WithDetail("path", dir))
			}

			out, err := a.renderer(cmd)
			if err != nil {
				return a.reportError(cmd, err)
			}
			return out.RenderMessage(fmt.Sprintf(MsgManWritten, dir))
		},
	}
}
