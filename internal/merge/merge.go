package merge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Robustic/tmc-langs-go/internal/filelock"
	"github.com/Robustic/tmc-langs-go/internal/messages"
	"github.com/Robustic/tmc-langs-go/internal/policy"
)

// lockFileName is the sentinel file guarding a workspace. Directories
// cannot be locked on every platform, so cooperating invocations lock
// this file instead of the workspace itself.
const lockFileName = ".tmc.lock"

// LockPath returns the sentinel lock path for a workspace.
func LockPath(workspace string) string {
	return filepath.Join(workspace, lockFileName)
}

// Result summarizes an executed merge.
type Result struct {
	// Applied counts entries created or overwritten in the workspace.
	Applied int
	// Preserved lists existing student-owned entries left untouched.
	Preserved []string
}

// Merge applies the update tree at source onto the workspace at target
// under the workspace's sentinel lock. Existing student-owned entries are
// never overwritten; everything else in the update is copied in, with
// directories created lazily as entries need them.
func Merge(source, target string, pol policy.StudentFilePolicy) (*Result, error) {
	targetInfo, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf(messages.MergeTargetUnreadableFmt, target, err)
	}
	if !targetInfo.IsDir() {
		return nil, fmt.Errorf(messages.MergeTargetNotDirFmt, target)
	}

	var result *Result
	err = filelock.WithLock(LockPath(target), func() error {
		plan, err := BuildPlan(source, target, pol)
		if err != nil {
			return err
		}
		if err := plan.Execute(); err != nil {
			return err
		}
		result = plan.Result()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
