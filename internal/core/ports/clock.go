package ports

import "time"

// Clock abstracts time for deterministic tests. Production code uses
// SystemClock; tests substitute a fixed or stepping implementation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
