package policy

// MakePolicy is the student file policy for Make-built C exercises.
type MakePolicy struct {
	configFileParentPath string
}

// NewMakePolicy builds the Make policy anchored at the given config parent.
func NewMakePolicy(configFileParentPath string) *MakePolicy {
	return &MakePolicy{configFileParentPath: configFileParentPath}
}

// IsStudentSourceFile reports whether relPath is under the src directory.
func (p *MakePolicy) IsStudentSourceFile(relPath string) bool {
	return inSourceDir(relPath)
}

// ConfigFileParentPath returns the directory holding the project file.
func (p *MakePolicy) ConfigFileParentPath() string {
	return p.configFileParentPath
}
