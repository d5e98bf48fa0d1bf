package wellness

import (
	"context"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
)

// TipRepository persists tips. Implementations serialize access internally.
type TipRepository interface {
	List(ctx context.Context, view View) ([]Tip, error)
	Get(ctx context.Context, id string) (Tip, bool, error)
	// Upsert inserts or replaces by id.
	Upsert(ctx context.Context, tips ...Tip) error
	Update(ctx context.Context, tip Tip) error
	SetFavorite(ctx context.Context, id string, favorite bool) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	// MarkAllOldGeneration clears isCurrentGeneration on every tip.
	MarkAllOldGeneration(ctx context.Context) error
}

// Generator sends one prompt to a text generation backend.
type Generator interface {
	GenerateContent(ctx context.Context, req GenerationRequest) (GenerationResult, error)
}

// Translator translates texts in order. Non-2xx responses return *UpstreamError.
type Translator interface {
	Translate(ctx context.Context, texts []string, target string) ([]string, error)
}

// ProfileReader loads the stored profile.
type ProfileReader interface {
	Get(ctx context.Context) (profile.UserProfile, bool, error)
}

// LanguageSettings is the subset of the settings service used here.
type LanguageSettings interface {
	Language(ctx context.Context) (settings.Language, error)
	SetLanguage(ctx context.Context, code string) (settings.Language, error)
}
