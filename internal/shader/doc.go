// Package shader compiles the project's shader sources to SPIR-V.
//
// GLSL and HLSL sources carry their pipeline stage as a two-letter infix,
// "<name>.<code>.<glsl|hlsl>", resolved through [Stages] and passed to glslc.
// WGSL sources are compiled in-process with naga; their stage comes from the
// entry points in the source. Every language writes to the shared SPIR-V
// tree next to the language directories:
//
//	Assets/Shaders/GLSL/<dir>/<name>.vs.glsl  ->  Assets/Shaders/SPIR-V/<dir>/<name>.vs.spv
//	Assets/Shaders/WGSL/<dir>/<name>.wgsl     ->  Assets/Shaders/SPIR-V/<dir>/<name>.spv
package shader
