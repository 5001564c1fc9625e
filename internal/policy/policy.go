// Package policy classifies workspace paths as student-owned or
// instructor-owned. Each supported language supplies its own
// StudentFilePolicy variant; the merge engine depends only on this
// contract, so new languages plug in without touching the lock or the
// copy engine.
package policy

import (
	"path/filepath"
	"strings"
)

// StudentFilePolicy decides which paths in an exercise workspace belong to
// the student. Implementations must be pure and path-only: the same
// relative path always yields the same answer, and evaluation performs no
// filesystem access.
type StudentFilePolicy interface {
	// IsStudentSourceFile reports whether the path, relative to the
	// workspace root, is student-authored.
	IsStudentSourceFile(relPath string) bool

	// ConfigFileParentPath returns the directory holding the exercise's
	// project file.
	ConfigFileParentPath() string
}

// inSourceDir reports whether relPath's first path component is exactly
// "src". The comparison is on whole components, so "srca/file" does not
// match and "dir/src/file" does not match.
func inSourceDir(relPath string) bool {
	rel := filepath.ToSlash(filepath.Clean(relPath))
	first, _, _ := strings.Cut(rel, "/")
	return first == "src"
}

// NothingIsStudentFilePolicy classifies every path as instructor-owned.
// It is used for staging flows that overwrite freely, such as building an
// update tree in a temporary directory.
type NothingIsStudentFilePolicy struct {
	configFileParentPath string
}

// NewNothingIsStudentFilePolicy returns a policy that never preserves.
func NewNothingIsStudentFilePolicy(configFileParentPath string) *NothingIsStudentFilePolicy {
	return &NothingIsStudentFilePolicy{configFileParentPath: configFileParentPath}
}

// IsStudentSourceFile always reports false.
func (p *NothingIsStudentFilePolicy) IsStudentSourceFile(string) bool {
	return false
}

// ConfigFileParentPath returns the directory holding the project file.
func (p *NothingIsStudentFilePolicy) ConfigFileParentPath() string {
	return p.configFileParentPath
}
