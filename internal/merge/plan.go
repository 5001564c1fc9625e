// Package merge applies an instructor template update onto a student
// workspace. A policy pre-pass decides what to preserve; the copy
// mechanism itself stays policy-agnostic.
package merge

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Robustic/tmc-langs-go/internal/fsutil"
	"github.com/Robustic/tmc-langs-go/internal/messages"
	"github.com/Robustic/tmc-langs-go/internal/policy"
)

// ActionKind identifies one kind of planned merge step.
type ActionKind string

// The merge step kinds.
const (
	ActionCreateDir ActionKind = "create-dir"
	ActionCopyFile  ActionKind = "copy-file"
	ActionSkip      ActionKind = "skip"
)

// Action is a single planned step: one entry of the update tree mapped
// onto the workspace.
type Action struct {
	Kind   ActionKind
	Rel    string
	Source string
	Target string
}

// Plan is the policy-filtered set of actions for one merge. It is built,
// executed once, and discarded.
type Plan struct {
	actions []Action
}

// Actions returns the planned steps in traversal order.
func (p *Plan) Actions() []Action {
	return p.actions
}

// BuildPlan diffs the update tree at source against the workspace at
// target. Entries that already exist in the workspace and classify as
// student-owned become skip actions; everything else becomes a create-dir
// or copy-file action. The plan never contains an action that would
// overwrite an existing student-owned entry.
func BuildPlan(source, target string, pol policy.StudentFilePolicy) (*Plan, error) {
	sourceInfo, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf(messages.MergeSourceUnreadableFmt, source, err)
	}
	if !sourceInfo.IsDir() {
		return nil, fmt.Errorf(messages.MergeSourceNotDirFmt, source)
	}

	plan := &Plan{}
	walkErr := filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return &fsutil.FileError{Op: fsutil.OpDirRead, Path: path, Err: err}
		}
		if path == source {
			return nil
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return &fsutil.FileError{Op: fsutil.OpDirRead, Path: path, Err: err}
		}
		dest := filepath.Join(target, rel)

		exists := true
		if _, err := os.Lstat(dest); err != nil {
			if !os.IsNotExist(err) {
				return &fsutil.FileError{Op: fsutil.OpFileOpen, Path: dest, Err: err}
			}
			exists = false
		}

		switch {
		case !entry.IsDir() && !entry.Type().IsRegular():
			return &fsutil.FileError{Op: fsutil.OpFileCopy, Path: path, Dest: dest, Err: fsutil.ErrUnsupportedEntry}
		case exists && pol.IsStudentSourceFile(rel):
			plan.actions = append(plan.actions, Action{Kind: ActionSkip, Rel: rel, Source: path, Target: dest})
		case entry.IsDir():
			if !exists {
				plan.actions = append(plan.actions, Action{Kind: ActionCreateDir, Rel: rel, Source: path, Target: dest})
			}
		default:
			plan.actions = append(plan.actions, Action{Kind: ActionCopyFile, Rel: rel, Source: path, Target: dest})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return plan, nil
}

// Execute applies the plan in order. Execution is not transactional: a
// failure partway leaves a partially updated workspace. Callers needing
// atomicity should merge into a staged temporary tree and rename it into
// place.
func (p *Plan) Execute() error {
	for _, action := range p.actions {
		switch action.Kind {
		case ActionCreateDir:
			if err := fsutil.CreateDirAll(action.Target); err != nil {
				return err
			}
		case ActionCopyFile:
			if err := fsutil.Copy(action.Source, action.Target); err != nil {
				return err
			}
		case ActionSkip:
			// Preserved student work.
		}
	}
	return nil
}

// Result summarizes an executed plan.
func (p *Plan) Result() *Result {
	result := &Result{}
	for _, action := range p.actions {
		switch action.Kind {
		case ActionCreateDir, ActionCopyFile:
			result.Applied++
		case ActionSkip:
			result.Preserved = append(result.Preserved, action.Rel)
		}
	}
	return result
}
