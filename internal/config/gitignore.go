package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ReportsDirName is the directory inside a project .poolheat directory that
// `poolheat report --save` writes to.
const ReportsDirName = "reports"

// gitignoreEntries are the generated files kept out of version control. The
// config file itself is tracked so a team shares its model assumptions.
//
//nolint:gochecknoglobals // Read-only list.
var gitignoreEntries = []string{
	ReportsDirName + "/",
	"*.csv",
	"*.log",
}

// GitignoreContent returns the .gitignore written into project .poolheat
// directories.
func GitignoreContent() string {
	var sb strings.Builder
	sb.WriteString("# poolheat project data (auto-generated)\n")
	sb.WriteString("# config.yaml is tracked; saved reports, chart data and logs are not.\n")
	for _, e := range gitignoreEntries {
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ReportsDir returns where saved reports live for the given project
// .poolheat directory.
func ReportsDir(projectDir string) string {
	return filepath.Join(projectDir, ReportsDirName)
}

// EnsureGitignore writes GitignoreContent to dir/.gitignore unless the file
// already exists. It reports whether a file was created.
func EnsureGitignore(dir string) (bool, error) {
	if err := os.MkdirAll(dir, configDirPerm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ".gitignore")
	//nolint:gosec // .gitignore must be world-readable.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating .gitignore at %s: %w", path, err)
	}

	_, writeErr := f.WriteString(GitignoreContent())
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", path, writeErr)
	}
	return true, nil
}
