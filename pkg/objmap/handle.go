package objmap

import "fmt"

// Handle is an opaque integer identifying an object stored in a Registry.
//
// Handles are safe to pass across module boundaries: they reveal nothing
// about the stored object's layout, and a stale or forged handle can at
// worst produce a not-found result, never a bad memory access.
//
// The zero value is Null and never identifies a real object.
type Handle uint64

// Reserved handle values. The top of the key space carries error sentinels
// so that a single Handle return value can encode both success and failure;
// none of these are ever issued for a real object.
const (
	// Null represents "no object".
	Null Handle = 0

	// Overflow is returned by Insert when the registry's key space is
	// exhausted. The registry is unusable for further inserts until Reset.
	Overflow Handle = handleLimit

	// Internal is returned by Insert when the backing store rejected the
	// entry.
	Internal Handle = handleLimit - 1

	// MaxIndex is the highest handle value that can identify a real object.
	// Every issued handle is in [1, MaxIndex]; callers following the
	// C-style discipline can treat any handle above MaxIndex as an error.
	MaxIndex Handle = handleLimit - 2
)

// Valid reports whether h is in the range of issuable handles.
// It returns false for Null and for the error sentinels.
func (h Handle) Valid() bool {
	return h >= 1 && h <= MaxIndex
}

// String implements fmt.Stringer. Sentinels render by name.
func (h Handle) String() string {
	switch h {
	case Null:
		return "Null"
	case Overflow:
		return "Overflow"
	case Internal:
		return "Internal"
	}
	return fmt.Sprintf("Handle(%d)", uint64(h))
}
