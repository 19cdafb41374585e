package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorPath(t *testing.T) {
	p := filepath.FromSlash
	tests := []struct {
		name    string
		srcRoot string
		dstRoot string
		src     string
		ext     string
		want    string
	}{
		{"one level", "/a/png", "/a/ktx", "/a/png/ui/button.png", ".ktx", "/a/ktx/ui/button.ktx"},
		{"stage infix kept", "/s/GLSL", "/s/SPIR-V", "/s/GLSL/pbr/pbr.fs.glsl", ".spv", "/s/SPIR-V/pbr/pbr.fs.spv"},
		{"directly in root", "/a/png", "/a/ktx", "/a/png/logo.png", ".ktx", "/a/ktx/logo.ktx"},
		{"shader directly in language root", "/s/GLSL", "/s/SPIR-V", "/s/GLSL/top.vs.glsl", ".spv", "/s/SPIR-V/top.vs.spv"},
		{"nested", "/a/png", "/a/dds/dxt5", "/a/png/env/sky/px.png", ".dds", "/a/dds/dxt5/env/sky/px.dds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MirrorPath(p(tt.srcRoot), p(tt.dstRoot), p(tt.src), tt.ext)
			require.NoError(t, err)
			assert.Equal(t, p(tt.want), got)
		})
	}
}

func TestMirrorPath_OutsideRoot(t *testing.T) {
	_, err := MirrorPath(filepath.FromSlash("/a/png"), filepath.FromSlash("/a/ktx"), filepath.FromSlash("/b/x.png"), ".ktx")
	assert.Error(t, err)
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "a.vs.spv", ReplaceExt("a.vs.glsl", ".spv"))
	assert.Equal(t, "a.ktx", ReplaceExt("a.png", ".ktx"))
	assert.Equal(t, "noext.spv", ReplaceExt("noext", ".spv"))
}
