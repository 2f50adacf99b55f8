//go:build objmap32

package objmap

import "math"

// handleLimit is the top of the handle value space for this build.
// With the objmap32 tag, handles and their sentinels fit in 32 bits.
const handleLimit Handle = math.MaxUint32
