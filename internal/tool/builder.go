package tool

// Glslc returns the argv compiling src to SPIR-V at dst for the given stage
// ("vert", "frag", ...).
func Glslc(bin, stage, src, dst string) []string {
	return []string{bin, "-fshader-stage=" + stage, src, "-o", dst}
}

// Toktx returns the argv converting src to a 2D KTX texture at dst with a
// generated mipmap chain. toktx takes the output before the input.
func Toktx(bin, src, dst string) []string {
	return []string{bin, "--2d", "--genmipmap", dst, src}
}

// ConvertDDS returns the ImageMagick argv writing src as a DXT5 compressed
// DDS texture at dst.
func ConvertDDS(bin, src, dst string) []string {
	return []string{bin, "-format", "dds", "-define", "dds:compression=dxt5", src, dst}
}
