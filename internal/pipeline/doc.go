// Package pipeline is the skeleton shared by the shader and texture tools:
// discover source files, plan one job per file, run it, and log the outcome.
//
// A [Batch] names the source tree, the file-name suffix to pick up, and a
// planner that turns a source path into a [Job]. [Runner.Run] processes the
// files one at a time in lexicographic order. A failing job is logged and
// counted; the batch always moves on to the next file. The only ways a batch
// stops early are a planning error under strict mode and context
// cancellation.
package pipeline
