package shader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Stages maps file-name stage codes to glslc -fshader-stage values.
var Stages = map[string]string{
	"vs": "vert",
	"fs": "frag",
	"gs": "geom",
	"tc": "tesc",
	"te": "tese",
	"cs": "comp",
}

// ErrUnrecognizedStage is the sentinel behind every *StageError.
var ErrUnrecognizedStage = errors.New("unrecognized shader stage code")

// StageError reports a shader whose file name has no known stage code.
type StageError struct {
	Code string // Second dot-separated segment of the file name; may be empty.
	Path string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%v %q in %s (want vs, fs, gs, tc, te or cs)",
		ErrUnrecognizedStage, e.Code, filepath.Base(e.Path))
}

func (e *StageError) Unwrap() error { return ErrUnrecognizedStage }

// StageCode returns the second dot-separated segment of the base name of
// path: "foo.vs.glsl" -> "vs". It returns "" when there is none.
func StageCode(path string) string {
	parts := strings.Split(filepath.Base(path), ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// StageFor resolves the glslc stage name for a shader file.
func StageFor(path string) (string, error) {
	code := StageCode(path)
	stage, ok := Stages[code]
	if !ok {
		return "", &StageError{Code: code, Path: path}
	}
	return stage, nil
}
