package messages

// Merge and policy messages for update application failures.
const (
	// MergeSourceUnreadableFmt formats update-tree stat failures.
	MergeSourceUnreadableFmt = "cannot read update tree %s: %w"
	MergeSourceNotDirFmt     = "update tree %s is not a directory"
	MergeTargetUnreadableFmt = "cannot read workspace %s: %w"
	MergeTargetNotDirFmt     = "workspace %s is not a directory"

	// PolicyReadProjectFileFmt formats project file read failures.
	PolicyReadProjectFileFmt    = "failed to read project file %s: %w"
	PolicyInvalidProjectFileFmt = "invalid project file %s: %w"
)
