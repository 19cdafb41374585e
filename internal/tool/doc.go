// Package tool builds argument vectors for the external asset tools and runs
// them.
//
// Builders (builder.go) return complete argv slices, binary first:
//
//	glslc  -fshader-stage=<stage> <src> -o <dst>
//	toktx  --2d --genmipmap <dst> <src>
//	convert -format dds -define dds:compression=dxt5 <src> <dst>
//
// [Executor] runs one argv to completion and reports its exit status and
// captured stderr. [Classify] maps a failed result onto a [FailureKind] so the
// caller can log a short reason next to the failure line.
package tool
