package civix

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Scaffolding for CiviCRM extensions"
	MsgGenerateTestShort = "Add a new PHPUnit test to a CiviCRM Module-Extension"
	MsgConfigShort       = "Show the effective configuration"
	MsgVersionShort      = "Print version information"
	MsgTopicsShort       = "Display available documentation topics"
	MsgTopicsLong        = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort   = "Generate shell completion script"
	MsgManShort          = "Generate man pages into a directory"

	// Output
	MsgVersionFormat = "civix version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Wrote man pages to %s"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrReportErrors  = "generation finished with errors"
	MsgErrHelpNotFound  = "help command not found"
	MsgErrManDirMissing = "failed to create man directory %s"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagExtDir   = "Extension directory (default: nearest directory with info.xml)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagTemplate = "The template of test to generate (headless, e2e, legacy)"
	MsgFlagInit     = "Write a commented starter config file"

	// Arguments
	MsgArgClassName = "<CRM_Full_ClassName>"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-test-long.txt
	msgGenerateTestLongRaw string
	MsgGenerateTestLong    = strings.TrimSpace(msgGenerateTestLongRaw)

	//go:embed msgs/generate-test-example.txt
	msgGenerateTestExampleRaw string
	MsgGenerateTestExample    = strings.TrimRight(msgGenerateTestExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
