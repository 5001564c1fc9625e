package merge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Robustic/tmc-langs-go/internal/filelock"
	"github.com/Robustic/tmc-langs-go/internal/fsutil"
	"github.com/Robustic/tmc-langs-go/internal/policy"
	"github.com/Robustic/tmc-langs-go/internal/testutil"
)

func TestMergePreservesStudentFile(t *testing.T) {
	update := t.TempDir()
	testutil.FileTo(t, update, "src/main.java", "template")
	testutil.FileTo(t, update, "test/main_test.java", "new tests")

	workspace := t.TempDir()
	testutil.FileTo(t, workspace, "src/main.java", "mine")
	testutil.FileTo(t, workspace, "test/main_test.java", "old tests")

	result, err := Merge(update, workspace, policy.NewAntPolicy(workspace))
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	if got := testutil.ReadFile(t, filepath.Join(workspace, "src/main.java")); got != "mine" {
		t.Fatalf("student file overwritten: got %q", got)
	}
	if got := testutil.ReadFile(t, filepath.Join(workspace, "test/main_test.java")); got != "new tests" {
		t.Fatalf("instructor file not updated: got %q", got)
	}
	// Both the existing src directory and the file under it are preserved.
	preserved := map[string]bool{}
	for _, rel := range result.Preserved {
		preserved[filepath.ToSlash(rel)] = true
	}
	if !preserved["src"] || !preserved["src/main.java"] {
		t.Fatalf("expected src and src/main.java preserved, got %v", result.Preserved)
	}
}

func TestMergeAddsNewStudentSideFiles(t *testing.T) {
	update := t.TempDir()
	testutil.FileTo(t, update, "src/helper.java", "new skeleton")

	workspace := t.TempDir()
	testutil.FileTo(t, workspace, "src/main.java", "mine")

	if _, err := Merge(update, workspace, policy.NewAntPolicy(workspace)); err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	// A file that does not exist yet is copied even under src.
	if got := testutil.ReadFile(t, filepath.Join(workspace, "src/helper.java")); got != "new skeleton" {
		t.Fatalf("new skeleton not copied: got %q", got)
	}
	if got := testutil.ReadFile(t, filepath.Join(workspace, "src/main.java")); got != "mine" {
		t.Fatalf("student file overwritten: got %q", got)
	}
}

func TestMergeCreatesEmptyDirectories(t *testing.T) {
	update := t.TempDir()
	testutil.DirTo(t, update, "lib/empty")

	workspace := t.TempDir()
	if _, err := Merge(update, workspace, policy.NewMakePolicy(workspace)); err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	info, err := os.Stat(filepath.Join(workspace, "lib/empty"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory")
	}
}

func TestMergeRespectsProjectFileExtras(t *testing.T) {
	update := t.TempDir()
	testutil.FileTo(t, update, "notes.md", "template notes")

	workspace := t.TempDir()
	testutil.FileTo(t, workspace, "notes.md", "my notes")
	testutil.FileTo(t, workspace, policy.ProjectFileName, `extra_student_files = ["notes.md"]`)

	pol, err := policy.LoadWithProjectFile(policy.NewAntPolicy(workspace))
	if err != nil {
		t.Fatalf("LoadWithProjectFile error: %v", err)
	}
	if _, err := Merge(update, workspace, pol); err != nil {
		t.Fatalf("Merge error: %v", err)
	}

	if got := testutil.ReadFile(t, filepath.Join(workspace, "notes.md")); got != "my notes" {
		t.Fatalf("extra student file overwritten: got %q", got)
	}
}

func TestMergeMissingWorkspaceFails(t *testing.T) {
	update := t.TempDir()
	missing := filepath.Join(t.TempDir(), "gone")

	_, err := Merge(update, missing, policy.NewAntPolicy(missing))
	if err == nil {
		t.Fatal("expected error for missing workspace")
	}
}

func TestMergeWaitsForWorkspaceLock(t *testing.T) {
	update := t.TempDir()
	testutil.FileTo(t, update, "README.md", "updated")

	workspace := t.TempDir()
	testutil.FileTo(t, workspace, "README.md", "original")

	holder, err := filelock.Acquire(LockPath(workspace))
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}

	merged := make(chan error, 1)
	go func() {
		_, err := Merge(update, workspace, policy.NewAntPolicy(workspace))
		merged <- err
	}()

	time.Sleep(200 * time.Millisecond)
	select {
	case <-merged:
		t.Fatal("merge proceeded while workspace lock was held")
	default:
	}
	if got := testutil.ReadFile(t, filepath.Join(workspace, "README.md")); got != "original" {
		t.Fatalf("workspace modified under held lock: %q", got)
	}

	if err := holder.Release(); err != nil {
		t.Fatalf("Release error: %v", err)
	}
	if err := <-merged; err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if got := testutil.ReadFile(t, filepath.Join(workspace, "README.md")); got != "updated" {
		t.Fatalf("merge did not apply after lock release: %q", got)
	}
}

func TestBuildPlanSkipsOnlyExistingStudentEntries(t *testing.T) {
	update := t.TempDir()
	testutil.FileTo(t, update, "src/existing", "template")
	testutil.FileTo(t, update, "src/new", "template")
	testutil.FileTo(t, update, "Makefile", "template")

	workspace := t.TempDir()
	testutil.FileTo(t, workspace, "src/existing", "mine")
	testutil.FileTo(t, workspace, "Makefile", "old")

	plan, err := BuildPlan(update, workspace, policy.NewMakePolicy(workspace))
	if err != nil {
		t.Fatalf("BuildPlan error: %v", err)
	}

	kinds := map[string]ActionKind{}
	for _, action := range plan.Actions() {
		kinds[filepath.ToSlash(action.Rel)] = action.Kind
	}
	if kinds["src/existing"] != ActionSkip {
		t.Fatalf("expected existing student file skipped, got %q", kinds["src/existing"])
	}
	if kinds["src/new"] != ActionCopyFile {
		t.Fatalf("expected new file copied, got %q", kinds["src/new"])
	}
	if kinds["Makefile"] != ActionCopyFile {
		t.Fatalf("expected instructor file copied, got %q", kinds["Makefile"])
	}
	// src exists and is student-owned, so it is preserved rather than
	// recreated.
	if kinds["src"] != ActionSkip {
		t.Fatalf("expected existing src dir skipped, got %q", kinds["src"])
	}
}

func TestBuildPlanRejectsSymlinkInUpdate(t *testing.T) {
	update := t.TempDir()
	real := testutil.FileTo(t, update, "real", "data")
	if err := os.Symlink(real, filepath.Join(update, "link")); err != nil {
		t.Skipf("symlink unsupported: %v", err)
	}

	workspace := t.TempDir()
	_, err := BuildPlan(update, workspace, policy.NewAntPolicy(workspace))
	if !errors.Is(err, fsutil.ErrUnsupportedEntry) {
		t.Fatalf("expected ErrUnsupportedEntry, got %v", err)
	}
}

func TestPlanResultCounts(t *testing.T) {
	update := t.TempDir()
	testutil.FileTo(t, update, "a", "1")
	testutil.FileTo(t, update, "b/c", "2")

	workspace := t.TempDir()
	plan, err := BuildPlan(update, workspace, policy.NewAntPolicy(workspace))
	if err != nil {
		t.Fatalf("BuildPlan error: %v", err)
	}
	result := plan.Result()
	// a, b and b/c are all applied; nothing is preserved.
	if result.Applied != 3 {
		t.Fatalf("expected 3 applied, got %d", result.Applied)
	}
	if len(result.Preserved) != 0 {
		t.Fatalf("expected nothing preserved, got %v", result.Preserved)
	}
}
