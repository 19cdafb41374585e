package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MirrorPath maps src, a file beneath srcRoot, to the same relative
// directory beneath dstRoot with its last extension replaced by ext:
//
//	MirrorPath("png", "ktx", "png/ui/button.png", ".ktx") == "ktx/ui/button.ktx"
//	MirrorPath("GLSL", "SPIR-V", "GLSL/pbr/pbr.fs.glsl", ".spv") == "SPIR-V/pbr/pbr.fs.spv"
//
// Only the last extension is replaced, so stage infixes survive.
func MirrorPath(srcRoot, dstRoot, src, ext string) (string, error) {
	rel, err := filepath.Rel(srcRoot, filepath.Dir(src))
	if err != nil {
		return "", fmt.Errorf("mirror %s: %w", src, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("mirror %s: not beneath %s", src, srcRoot)
	}
	return filepath.Join(dstRoot, rel, ReplaceExt(filepath.Base(src), ext)), nil
}

// ReplaceExt replaces the last extension of name with ext, or appends ext
// when name has none.
func ReplaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
