package duscan

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort  = "A disk-usage scanner with regexp exclude rules"
	MsgScanShort  = "Scan a directory tree and report disk usage"
	MsgScanLong   = "Scan walks a directory tree, totals the disk usage of every file, and skips entries whose names match an enabled exclude rule."
	MsgCheckShort = "Check names against the exclude rules"
	MsgCheckLong  = "Check reports, for each given name, whether it would be excluded from a scan and which rule excluded it."
	MsgRulesShort = "List the effective exclude rules and where each came from"
	MsgRulesLong  = "Rules lists every exclude rule in evaluation order with its enabled state and the configuration layer it came from. Given a path, rules from that directory's .duscan.toml are included."
	MsgDocsShort  = "Show extended documentation topics"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, or text"
	MsgFlagTop     = "Number of largest files to report (overrides config)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/duscan/duscan.toml)"

	// Status messages
	MsgNoRules       = "No exclude rules configured."
	MsgNoTopics      = "Available topics:"
	MsgCheckExcluded = "one or more names matched an exclude rule"
)

// MsgRootLong is the root command's long help text.
const MsgRootLong = `duscan scans directory trees and reports where the disk space went.

File and directory names matching an enabled exclude rule are skipped
entirely; excluded directories are not descended into. Rules are regular
expressions loaded from the config file, and a .duscan.toml in the scan
root can add rules for that tree only.`
