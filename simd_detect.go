package fp64set

import "golang.org/x/sys/cpu"

// resolveSIMD turns the configured mode ("auto"/"on"/"off") into a concrete
// decision, consulting golang.org/x/sys/cpu for "auto". This is the runtime
// "has SIMD 64-bit equality compare" capability flag spec.md §1 names as one
// of the core's two external collaborators.
func resolveSIMD(mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
	}
}
