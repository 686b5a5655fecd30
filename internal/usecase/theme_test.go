package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
	testhelpers "github.com/polkiloo/presto/internal/test"
)

func TestThemeServiceDefaultsToLight(t *testing.T) {
	svc := NewThemeService(testhelpers.NewPreferenceRepositoryStub())

	theme, err := svc.Get(context.Background())
	if err != nil || theme != model.ThemeLight {
		t.Fatalf("expected light, got %s %v", theme, err)
	}
}

func TestThemeServiceToggleRoundTrip(t *testing.T) {
	repo := testhelpers.NewPreferenceRepositoryStub()
	svc := NewThemeService(repo)
	ctx := context.Background()

	theme, err := svc.Toggle(ctx)
	if err != nil || theme != model.ThemeDark {
		t.Fatalf("expected dark after toggle, got %s %v", theme, err)
	}
	if repo.Values["theme"] != "dark" {
		t.Fatalf("expected persisted dark, got %q", repo.Values["theme"])
	}

	theme, err = svc.Toggle(ctx)
	if err != nil || theme != model.ThemeLight {
		t.Fatalf("expected light after second toggle, got %s %v", theme, err)
	}
}

func TestThemeServiceValidation(t *testing.T) {
	repo := testhelpers.NewPreferenceRepositoryStub()
	svc := NewThemeService(repo)

	if err := svc.Set(context.Background(), model.Theme("sepia")); !errors.Is(err, domainErrors.ErrInvalidTheme) {
		t.Fatalf("expected invalid theme, got %v", err)
	}
	if repo.Sets != 0 {
		t.Fatal("invalid theme must not be persisted")
	}

	repo.Values["theme"] = "garbage"
	if theme, err := svc.Get(context.Background()); err != nil || theme != model.ThemeLight {
		t.Fatalf("expected fallback to light, got %s %v", theme, err)
	}
}

func TestThemeServicePropagatesStorageError(t *testing.T) {
	boom := errors.New("boom")
	repo := testhelpers.NewPreferenceRepositoryStub()
	repo.GetErr = boom

	if _, err := NewThemeService(repo).Toggle(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
