//go:build !linux

package tick

// HostResolution is not available here; Resolution falls back to the runtime value.
func HostResolution() (float64, error) {
	return 0, ErrUnsupported
}
