package ports

import "context"

// SoundAlerter produces the audible alert for high-priority notifications.
// Playback is best-effort: callers log failures and never propagate them.
type SoundAlerter interface {
	Play(ctx context.Context) error
}
