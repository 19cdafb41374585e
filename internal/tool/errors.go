package tool

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// FailureKind is a coarse reason for a failed tool run.
type FailureKind int

const (
	FailureNone             FailureKind = iota
	FailureToolMissing                  // Binary not found or not executable.
	FailureMissingOutputDir             // Destination directory does not exist.
	FailureMissingInput                 // Tool could not read the source file.
	FailureExitStatus                   // Any other non-zero exit.
)

// String returns a short human-readable label.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "ok"
	case FailureToolMissing:
		return "tool not found"
	case FailureMissingOutputDir:
		return "output directory missing"
	case FailureMissingInput:
		return "input unreadable"
	case FailureExitStatus:
		return "non-zero exit"
	}
	return "unknown"
}

// Stderr patterns from glslc, toktx and ImageMagick for an unreadable input.
var reMissingInput = regexp.MustCompile(
	`(?i)cannot open input file|` +
		`could not open input file|` +
		`unable to open image|` +
		`no such file or directory`)

// Classify maps a tool result to a FailureKind. dst is the destination the
// tool was asked to write; a missing parent directory is detected on disk.
func Classify(res ExecResult, dst string) FailureKind {
	if res.OK() {
		return FailureNone
	}
	var exitErr *exec.ExitError
	if !errors.As(res.Err, &exitErr) {
		if errors.Is(res.Err, exec.ErrNotFound) || errors.Is(res.Err, fs.ErrNotExist) || errors.Is(res.Err, fs.ErrPermission) {
			return FailureToolMissing
		}
		return FailureExitStatus
	}
	if dst != "" {
		if _, err := os.Stat(filepath.Dir(dst)); errors.Is(err, fs.ErrNotExist) {
			return FailureMissingOutputDir
		}
	}
	if reMissingInput.MatchString(res.Stderr) {
		return FailureMissingInput
	}
	return FailureExitStatus
}

// LastLine returns the last non-empty line of a tool's stderr, which for
// glslc, toktx and convert carries the actual diagnostic.
func LastLine(stderr string) string {
	lines := strings.Split(strings.TrimRight(stderr, "\r\n \t"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
