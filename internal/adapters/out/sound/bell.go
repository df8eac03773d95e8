// Package sound provides the audible alert used for high-priority
// notifications.
package sound

import (
	"context"
	"io"

	"hatbazar/internal/core/ports"
)

// BellAlerter writes the ASCII bell character to a terminal-like writer.
// It is the headless stand-in for a real notification sound.
type BellAlerter struct {
	out io.Writer
}

var _ ports.SoundAlerter = &BellAlerter{}

// NewBellAlerter creates a BellAlerter writing to out, typically os.Stdout.
func NewBellAlerter(out io.Writer) *BellAlerter {
	return &BellAlerter{out: out}
}

// Play emits one bell. Callers treat failures as best-effort.
func (b *BellAlerter) Play(_ context.Context) error {
	_, err := b.out.Write([]byte{'\a'})
	return err
}
