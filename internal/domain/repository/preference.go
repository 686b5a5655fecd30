package repository

import "context"

// PreferenceRepository persists the few values that survive a session.
// Get returns domain ErrNotFound for unknown keys.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
