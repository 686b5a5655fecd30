package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/domain/repository"
)

const themeKey = "theme"

// ParseTheme validates an externally supplied theme name.
func ParseTheme(raw string) (model.Theme, error) {
	switch t := model.Theme(raw); t {
	case model.ThemeLight, model.ThemeDark:
		return t, nil
	default:
		return "", domainErrors.ErrInvalidTheme
	}
}

// ThemeService reads and writes the persisted colour scheme preference.
type ThemeService struct {
	prefs repository.PreferenceRepository
}

// NewThemeService constructs ThemeService.
func NewThemeService(prefs repository.PreferenceRepository) *ThemeService {
	return &ThemeService{prefs: prefs}
}

// Get returns the stored theme, falling back to light when nothing usable is stored.
func (s *ThemeService) Get(ctx context.Context) (model.Theme, error) {
	raw, err := s.prefs.Get(ctx, themeKey)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return model.ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	theme, err := ParseTheme(raw)
	if err != nil {
		return model.ThemeLight, nil
	}
	return theme, nil
}

// Set persists theme.
func (s *ThemeService) Set(ctx context.Context, theme model.Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	return s.prefs.Set(ctx, themeKey, string(theme))
}

// Toggle flips between light and dark and returns the new value.
func (s *ThemeService) Toggle(ctx context.Context) (model.Theme, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	next := model.ThemeDark
	if current == model.ThemeDark {
		next = model.ThemeLight
	}
	if err := s.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
