package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/objmap/pkg/objmap"
)

// payload is a typical small registered object.
type payload struct {
	data [4]uint64
}

func newRegistry(b *testing.B) *objmap.Registry[*payload] {
	b.Helper()
	r, err := objmap.New[*payload]()
	if err != nil {
		b.Fatal(err)
	}
	return r
}

// BenchmarkInsert measures handle issuance overhead.
func BenchmarkInsert(b *testing.B) {
	r := newRegistry(b)
	p := &payload{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Insert(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGet measures lookup overhead against 1024 live entries.
func BenchmarkGet(b *testing.B) {
	r := newRegistry(b)
	var handles []objmap.Handle
	for i := 0; i < 1024; i++ {
		h, err := r.Insert(&payload{})
		if err != nil {
			b.Fatal(err)
		}
		handles = append(handles, h)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := r.Get(handles[i%len(handles)]); !ok {
			b.Fatal("handle vanished")
		}
	}
}

// BenchmarkInsertRemove measures a full issue/retire cycle.
func BenchmarkInsertRemove(b *testing.B) {
	r := newRegistry(b)
	p := &payload{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := r.Insert(p)
		if err != nil {
			b.Fatal(err)
		}
		if _, ok := r.Remove(h); !ok {
			b.Fatal("remove failed")
		}
	}
}

// BenchmarkFlush_1000 measures bulk release of 1000 entries.
func BenchmarkFlush_1000(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		r := newRegistry(b)
		for j := 0; j < 1000; j++ {
			if _, err := r.Insert(&payload{}); err != nil {
				b.Fatal(err)
			}
		}
		b.StartTimer()
		r.Flush(ctx)
	}
}

// BenchmarkFlushWithReleaser_1000 measures bulk release when every entry
// runs a custom releaser.
func BenchmarkFlushWithReleaser_1000(b *testing.B) {
	ctx := context.Background()
	sink := 0
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		r, err := objmap.New(objmap.WithReleaser[*payload](func(*payload) { sink++ }))
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 1000; j++ {
			if _, err := r.Insert(&payload{}); err != nil {
				b.Fatal(err)
			}
		}
		b.StartTimer()
		r.Flush(ctx)
	}
	_ = sink
}
