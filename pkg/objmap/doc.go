/*
Package objmap maps heap-allocated objects to opaque integer handles.

# Overview

objmap lets a library store its internal objects in a registry and hand
callers an integer handle instead of a pointer, so the object's layout
and lifetime stay fully under the library's control. Handles are easy to
log and debug, cannot be dereferenced by callers, and a stale one yields
a clean not-found instead of a dangling pointer.

The trade-offs of the pattern:
  - Lookup costs a map access instead of a pointer chase.
  - The key space is finite and, outside Reset, keys of deleted entries
    are never reused; a registry can run out of handles.

# Basic Usage

Create a registry, insert objects, and translate handles back:

	type session struct {
	    user string
	}

	reg, err := objmap.New[*session]()
	if err != nil {
	    log.Fatal(err)
	}
	defer reg.Close()

	h, err := reg.Insert(&session{user: "alice"})
	if err != nil {
	    log.Fatal(err)
	}

	if s, ok := reg.Get(h); ok {
	    fmt.Println(s.user) // Output: alice
	}

	// Ownership comes back out with Remove.
	if s, ok := reg.Remove(h); ok {
	    _ = s // caller releases s from here on
	}

# Ownership

Insert hands the object over for exclusive ownership. Get returns a
borrowed reference that is invalidated the moment Remove, Flush, Reset or
Close touches that handle. Remove transfers ownership back to the caller
and never runs the releaser; the bulk operations release every remaining
entry through the releaser installed with WithReleaser or SetReleaser:

	reg, _ := objmap.New(objmap.WithReleaser(func(f *os.File) {
	    f.Close()
	}))

# Error Signaling

Insert reports failure both ways at once: through a regular Go error and
through the returned handle, which on failure is one of the reserved
sentinels above MaxIndex. Code ported from handle-checking APIs can keep
comparing against MaxIndex; new code should branch on the error.

# Concurrency

A Registry is deliberately unsynchronized. It assumes one logical owner;
wrap it in your own mutex if several goroutines must share an instance.
*/
package objmap
