package policy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Robustic/tmc-langs-go/internal/messages"
)

// ProjectFileName is the per-exercise project file holding instructor
// overrides for classification.
const ProjectFileName = ".tmcproject.toml"

// ProjectFile is the parsed per-exercise project file.
type ProjectFile struct {
	// ExtraStudentFiles lists workspace-relative paths that classify as
	// student-owned in addition to the language policy's own rule. An
	// entry naming a directory covers everything under it.
	ExtraStudentFiles []string `toml:"extra_student_files"`
}

// LoadProjectFile reads the project file from dir. A missing file is not
// an error and yields an empty ProjectFile.
func LoadProjectFile(dir string) (*ProjectFile, error) {
	path := filepath.Join(dir, ProjectFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ProjectFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.PolicyReadProjectFileFmt, path, err)
	}
	var projectFile ProjectFile
	if err := toml.Unmarshal(data, &projectFile); err != nil {
		return nil, fmt.Errorf(messages.PolicyInvalidProjectFileFmt, path, err)
	}
	return &projectFile, nil
}

// LoadWithProjectFile wraps base with the extra student files declared in
// the project file under base's config parent path. All I/O happens here,
// once; the returned policy stays pure.
func LoadWithProjectFile(base StudentFilePolicy) (StudentFilePolicy, error) {
	projectFile, err := LoadProjectFile(base.ConfigFileParentPath())
	if err != nil {
		return nil, err
	}
	if len(projectFile.ExtraStudentFiles) == 0 {
		return base, nil
	}
	return WithExtraStudentFiles(base, projectFile.ExtraStudentFiles), nil
}

// WithExtraStudentFiles returns a policy that classifies a path as
// student-owned when either the base policy does or the path matches one
// of the extra entries by whole path components.
func WithExtraStudentFiles(base StudentFilePolicy, extra []string) StudentFilePolicy {
	cleaned := make([]string, 0, len(extra))
	for _, entry := range extra {
		rel := filepath.ToSlash(filepath.Clean(entry))
		if rel == "" || rel == "." {
			continue
		}
		cleaned = append(cleaned, rel)
	}
	return &extraFilesPolicy{base: base, extra: cleaned}
}

type extraFilesPolicy struct {
	base  StudentFilePolicy
	extra []string
}

func (p *extraFilesPolicy) IsStudentSourceFile(relPath string) bool {
	if p.base.IsStudentSourceFile(relPath) {
		return true
	}
	rel := filepath.ToSlash(filepath.Clean(relPath))
	for _, entry := range p.extra {
		if rel == entry || strings.HasPrefix(rel, entry+"/") {
			return true
		}
	}
	return false
}

func (p *extraFilesPolicy) ConfigFileParentPath() string {
	return p.base.ConfigFileParentPath()
}
