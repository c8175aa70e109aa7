// Package tick provides a monotonic time point and the resolution of the clock behind it.
package tick

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultMeasureRounds is the number of sample pairs Measure takes when the caller passes zero.
const DefaultMeasureRounds = 1000

var (
	// ErrUnknownSource is returned by ParseSource for names it does not know.
	ErrUnknownSource = errors.New("unknown resolution source")
	// ErrUnsupported is returned when the platform cannot report a clock resolution.
	ErrUnsupported = errors.New("clock resolution not supported on this platform")
)

// Source selects which facility answers a resolution query.
type Source string

const (
	// SourceHost asks the platform monotonic clock.
	SourceHost Source = "host"
	// SourceRuntime reports the granularity of the Go monotonic reading.
	SourceRuntime Source = "runtime"
	// SourceMeasured calibrates by sampling consecutive ticks.
	SourceMeasured Source = "measured"
)

// ParseSource converts a name into a Source. An empty name selects SourceHost.
func ParseSource(name string) (Source, error) {
	switch s := Source(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return SourceHost, nil
	case SourceHost, SourceRuntime, SourceMeasured:
		return s, nil
	default:
		return SourceHost, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}

// Tick is an opaque monotonic time point.
type Tick struct {
	t time.Time
}

// Interval is the elapsed time between two ticks.
type Interval struct {
	d time.Duration
}

// Now returns the current monotonic time point.
func Now() Tick {
	return Tick{t: time.Now()}
}

// Sub returns the interval elapsed from u to t.
func (t Tick) Sub(u Tick) Interval {
	return Interval{d: t.t.Sub(u.t)}
}

// Seconds returns the interval in seconds.
func (i Interval) Seconds() float64 {
	return i.d.Seconds()
}

// Duration returns the interval as a time.Duration.
func (i Interval) Duration() time.Duration {
	return i.d
}

// RuntimeResolution is the smallest step a Tick can represent.
func RuntimeResolution() float64 {
	return time.Nanosecond.Seconds()
}

// measureBudget bounds the total time Measure spends sampling.
var measureBudget = 100 * time.Millisecond

// Measure returns the smallest positive delta seen between consecutive ticks
// over the given number of sample pairs. Sampling stops early once
// measureBudget has elapsed, after at least one pair. The result is never zero.
func Measure(rounds int) float64 {
	if rounds <= 0 {
		rounds = DefaultMeasureRounds
	}

	start := Now()
	smallest := time.Duration(0)
	for i := range rounds {
		if i > 0 && Now().Sub(start).d >= measureBudget {
			break
		}

		t0 := Now()
		t1 := Now()
		for t1.Sub(t0).d == 0 {
			t1 = Now()
		}

		if d := t1.Sub(t0).d; smallest == 0 || d < smallest {
			smallest = d
		}
	}

	return smallest.Seconds()
}

// Resolution answers a resolution query from src. On error the runtime
// resolution is returned alongside it so callers can fall back.
func Resolution(src Source, rounds int) (float64, error) {
	switch src {
	case SourceHost, "":
		res, err := HostResolution()
		if err != nil {
			return RuntimeResolution(), fmt.Errorf("host clock: %w", err)
		}
		return res, nil
	case SourceRuntime:
		return RuntimeResolution(), nil
	case SourceMeasured:
		return Measure(rounds), nil
	default:
		return RuntimeResolution(), fmt.Errorf("%w: %q", ErrUnknownSource, string(src))
	}
}
