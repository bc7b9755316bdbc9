// Package plotgl provides a minimal, predictable software 2D plotter for
// the calculator's graphing screen.
//
// Pipeline (fixed):
//
//	Samples → View mapping → Clipping → Rasterization → Frame output.
//
// The renderer is software-only and draws into a caller-provided Target.
// It does not require a full framebuffer and avoids allocations in the
// render hot path. Undefined samples lift the pen so curves with domain
// gaps still draw.
package plotgl
