package tick

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// HostResolution returns the granularity of CLOCK_MONOTONIC in seconds.
func HostResolution() (float64, error) {
	var ts unix.Timespec
	if err := unix.ClockGetres(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("clock_getres: %w", err)
	}

	res := float64(ts.Sec) + float64(ts.Nsec)*1e-9
	if res <= 0 {
		return 0, ErrUnsupported
	}

	return res, nil
}
