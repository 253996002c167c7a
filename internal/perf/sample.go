package perf

// Sample is one performance reading reported by the external renderer.
// Aggregation and smoothing happen on the renderer side; the console
// carries readings through untouched.
type Sample struct {
	FPS       float64
	FrameTime float64 // milliseconds per frame
	DrawCalls int
	Triangles int
}
