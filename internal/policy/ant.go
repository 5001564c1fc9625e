package policy

// AntPolicy is the student file policy for Ant-built Java exercises.
type AntPolicy struct {
	configFileParentPath string
}

// NewAntPolicy builds the Ant policy anchored at the given config parent.
func NewAntPolicy(configFileParentPath string) *AntPolicy {
	return &AntPolicy{configFileParentPath: configFileParentPath}
}

// IsStudentSourceFile reports whether relPath is under the src directory.
func (p *AntPolicy) IsStudentSourceFile(relPath string) bool {
	return inSourceDir(relPath)
}

// ConfigFileParentPath returns the directory holding the project file.
func (p *AntPolicy) ConfigFileParentPath() string {
	return p.configFileParentPath
}
