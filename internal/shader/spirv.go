package shader

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/spirv"
)

// headerSize is the five-word SPIR-V module header.
const headerSize = 5 * 4

// ErrNotSPIRV is returned by VerifySPIRV for output that is not a SPIR-V module.
var ErrNotSPIRV = errors.New("not a SPIR-V module")

// VerifySPIRV checks that path holds a little-endian SPIR-V module: a full
// header starting with the magic number and a whole number of words.
func VerifySPIRV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	if fi.Size() < headerSize || fi.Size()%4 != 0 {
		return fmt.Errorf("verify %s: %w (size %d)", path, ErrNotSPIRV, fi.Size())
	}

	var magic uint32
	if err := binary.Read(io.LimitReader(f, 4), binary.LittleEndian, &magic); err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	if magic != spirv.MagicNumber {
		return fmt.Errorf("verify %s: %w (magic 0x%08x)", path, ErrNotSPIRV, magic)
	}
	return nil
}

// wgslOptions targets SPIR-V 1.3, the version glslc emits for Vulkan 1.1.
func wgslOptions(debug bool) naga.CompileOptions {
	return naga.CompileOptions{
		SPIRVVersion: spirv.Version1_3,
		Debug:        debug,
	}
}

// CompileWGSL compiles the WGSL source at src and writes SPIR-V to dst.
// debug keeps names and line info in the module.
func CompileWGSL(ctx context.Context, src, dst string, debug bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	source, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	module, err := naga.CompileWithOptions(string(source), wgslOptions(debug))
	if err != nil {
		return fmt.Errorf("naga: %w", err)
	}
	return os.WriteFile(dst, module, 0o644)
}
