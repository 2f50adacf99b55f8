//go:build !objmap32

package objmap

import "math"

// handleLimit is the top of the handle value space for this build.
// The default build uses the full 64-bit key space; build with the
// objmap32 tag to restrict handles to 32 bits (e.g. when handles are
// stored in a narrower foreign field).
const handleLimit Handle = math.MaxUint64
