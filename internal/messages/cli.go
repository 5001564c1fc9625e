package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "tmc"
	// RootShort is the short description for the root command.
	RootShort = "TMC language tooling"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// MergeUse is the merge command usage.
	MergeUse   = "merge <update-dir> <workspace-dir>"
	MergeShort = "Merge a template update into a workspace, preserving student files"

	MergeFlagLanguage  = "Language plugin deciding which files are student-owned (ant, make)"
	MergeFlagDryRun    = "Show what would change without touching the workspace"
	MergeFlagDiffLines = "Maximum diff lines shown per file in a dry run"

	MergeDryRunHeader      = "Files the update would change:"
	MergeDryRunNoChanges   = "The update changes nothing."
	MergeDryRunTruncated   = "(diff truncated; raise --diff-lines to see more)"
	MergeSummaryFmt        = "Merged update: %d entries applied, %d student entries preserved.\n"
	MergePreservedEntryFmt = "  preserved %s\n"

	UnsupportedLanguageFmt = "unsupported language %q (supported: ant, make)"
)
