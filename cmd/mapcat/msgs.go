package mapcat

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "List the resources of a NagVis installation"
	MsgListShort        = "List the resources of one kind"
	MsgKindsShort       = "Show every resource kind and its directory"
	MsgIconsetTypeShort = "Print the image filetype of iconsets"
	MsgCheckVarShort    = "Check the var directory"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgCompletionLong   = "Generate the completion script for bash, zsh, fish or powershell."

	// Output
	MsgVersionFormat = "mapcat version %s\n  commit: %s\n  built:  %s\n"
	MsgKindsHeader   = "KIND"
	MsgDirHeader     = "DIRECTORY"
	MsgFromConfig    = "(main configuration)"
	MsgNoDirectory   = "(none)"
	MsgIconsetType   = "%s\t%s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrLoadConfig    = "failed to load configuration"
	MsgErrLoadLanguage  = "failed to load language %q"
	MsgErrFilterPattern = "invalid filter %q"
	MsgErrCheckFailed   = "var directory check failed"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/mapcat/mapcat.toml)"
	MsgFlagLang     = "Language for messages (default from global.language)"
	MsgFlagFilter   = "Only list names matching this regular expression"
	MsgFlagJSON     = "Print JSON instead of text"
	MsgFlagWritable = "Also check that the directory is writable"
	MsgFlagQuiet    = "Do not print failures, only set the exit status"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/check-var-long.txt
	msgCheckVarLongRaw string
	MsgCheckVarLong    = strings.TrimSpace(msgCheckVarLongRaw)

	//go:embed msgs/check-var-example.txt
	msgCheckVarExampleRaw string
	MsgCheckVarExample    = strings.TrimRight(msgCheckVarExampleRaw, "\n")
)
