// Package config loads registry settings from YAML or JSON files and
// turns them into construction options.
package config

import (
	"fmt"

	"github.com/randalmurphal/objmap/pkg/objmap"
	"github.com/randalmurphal/objmap/pkg/objmap/observability"
	"github.com/randalmurphal/objmap/pkg/objmap/store"
)

// Settings describes how to build a registry. The zero value is valid
// and equals Default().
type Settings struct {
	// Capacity pre-sizes the backing store. 0 means no pre-sizing.
	Capacity int `yaml:"capacity" json:"capacity"`

	// MaxEntries bounds the number of live entries. 0 means unbounded;
	// a positive value swaps in a capacity-limited store that rejects
	// inserts past the limit.
	MaxEntries int `yaml:"max_entries" json:"max_entries"`

	// Metrics enables OpenTelemetry metrics via the global meter provider.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables OpenTelemetry spans around bulk releases via the
	// global tracer provider.
	Tracing bool `yaml:"tracing" json:"tracing"`
}

// Default returns the default settings: unbounded, uninstrumented.
func Default() Settings {
	return Settings{}
}

// Validate checks the settings for internal consistency.
func (s Settings) Validate() error {
	if s.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", s.Capacity)
	}
	if s.MaxEntries < 0 {
		return fmt.Errorf("max_entries must not be negative, got %d", s.MaxEntries)
	}
	if s.MaxEntries > 0 && s.Capacity > s.MaxEntries {
		return fmt.Errorf("capacity %d exceeds max_entries %d", s.Capacity, s.MaxEntries)
	}
	return nil
}

// Options translates the settings into registry construction options.
//
// Example:
//
//	settings, err := config.FromFile("registry.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := objmap.New(config.Options[*Conn](settings)...)
func Options[T any](s Settings) []objmap.Option[T] {
	var opts []objmap.Option[T]
	if s.MaxEntries > 0 {
		opts = append(opts, objmap.WithStore[T](store.NewBounded[T](s.MaxEntries)))
	} else if s.Capacity > 0 {
		opts = append(opts, objmap.WithCapacity[T](s.Capacity))
	}
	if s.Metrics {
		opts = append(opts, objmap.WithMetrics[T](observability.NewMetricsRecorder()))
	}
	if s.Tracing {
		opts = append(opts, objmap.WithSpans[T](observability.NewSpanManager()))
	}
	return opts
}
