package merge

import (
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/Robustic/tmc-langs-go/internal/fsutil"
)

// DefaultDiffMaxLines is the default maximum number of diff lines rendered
// per file in a preview.
const DefaultDiffMaxLines = 40

// DiffPreview is a user-facing, per-file preview of an instructor-owned
// file the merge would change.
type DiffPreview struct {
	Rel         string
	UnifiedDiff string
	Truncated   bool
}

// BuildDiffPreviews renders unified diffs for every planned copy that
// would change an existing file. New files and preserved student files
// produce no preview. maxLines caps each diff; values <= 0 use
// DefaultDiffMaxLines.
func BuildDiffPreviews(plan *Plan, maxLines int) ([]DiffPreview, error) {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	var previews []DiffPreview
	for _, action := range plan.Actions() {
		if action.Kind != ActionCopyFile {
			continue
		}
		current, err := os.ReadFile(action.Target)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, &fsutil.FileError{Op: fsutil.OpFileRead, Path: action.Target, Err: err}
		}
		update, err := fsutil.ReadFile(action.Source)
		if err != nil {
			return nil, err
		}
		if string(current) == string(update) {
			continue
		}
		diff := udiff.Unified(action.Rel+" (workspace)", action.Rel+" (update)", string(current), string(update))
		preview := DiffPreview{Rel: action.Rel, UnifiedDiff: diff}
		if lines := strings.Split(strings.TrimRight(diff, "\n"), "\n"); len(lines) > maxLines {
			preview.UnifiedDiff = strings.Join(lines[:maxLines], "\n") + "\n"
			preview.Truncated = true
		}
		previews = append(previews, preview)
	}
	return previews, nil
}
