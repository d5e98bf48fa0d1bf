package http

import (
	"context"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
	"github.com/yanqian/wellness-tips/internal/domain/wellness"
)

type stubServices struct {
	profile  *stubProfileService
	tips     *stubTipsService
	settings *stubSettingsService
}

func newStubServices() *stubServices {
	return &stubServices{
		profile:  &stubProfileService{},
		tips:     &stubTipsService{},
		settings: &stubSettingsService{lang: settings.English},
	}
}

type stubProfileService struct {
	getFn  func(ctx context.Context) (profile.UserProfile, error)
	saveFn func(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error)
	exists bool
}

func (s *stubProfileService) Get(ctx context.Context) (profile.UserProfile, error) {
	if s.getFn != nil {
		return s.getFn(ctx)
	}
	return profile.UserProfile{}, nil
}

func (s *stubProfileService) Save(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error) {
	if s.saveFn != nil {
		return s.saveFn(ctx, p)
	}
	return p, nil
}

func (s *stubProfileService) Delete(context.Context) error { return nil }

func (s *stubProfileService) Exists(context.Context) (bool, error) { return s.exists, nil }

type stubTipsService struct {
	generateFn  func(ctx context.Context) ([]wellness.Tip, error)
	expandFn    func(ctx context.Context, id string) (wellness.Tip, error)
	toggleFn    func(ctx context.Context, id string, favorite bool) (wellness.ToggleResult, error)
	switchFn    func(ctx context.Context, language string) (settings.Language, wellness.TranslationReport, error)
	listFn      func(ctx context.Context, view wellness.View) ([]wellness.Tip, error)
	subscribeFn func(ctx context.Context) <-chan wellness.Event
	clears      int
}

func (s *stubTipsService) GenerateTips(ctx context.Context) ([]wellness.Tip, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx)
	}
	return []wellness.Tip{}, nil
}

func (s *stubTipsService) ExpandTip(ctx context.Context, id string) (wellness.Tip, error) {
	if s.expandFn != nil {
		return s.expandFn(ctx, id)
	}
	return wellness.Tip{ID: id}, nil
}

func (s *stubTipsService) ToggleFavorite(ctx context.Context, id string, favorite bool) (wellness.ToggleResult, error) {
	if s.toggleFn != nil {
		return s.toggleFn(ctx, id, favorite)
	}
	return wellness.ToggleResult{TipID: id}, nil
}

func (s *stubTipsService) TranslateTips(_ context.Context, language string) (wellness.TranslationReport, error) {
	return wellness.TranslationReport{Target: settings.Normalize(language)}, nil
}

func (s *stubTipsService) SwitchLanguage(ctx context.Context, language string) (settings.Language, wellness.TranslationReport, error) {
	if s.switchFn != nil {
		return s.switchFn(ctx, language)
	}
	return settings.Normalize(language), wellness.TranslationReport{}, nil
}

func (s *stubTipsService) ListTips(ctx context.Context, view wellness.View) ([]wellness.Tip, error) {
	if s.listFn != nil {
		return s.listFn(ctx, view)
	}
	return []wellness.Tip{}, nil
}

func (s *stubTipsService) GetTip(_ context.Context, id string) (wellness.Tip, error) {
	return wellness.Tip{ID: id}, nil
}

func (s *stubTipsService) ClearTips(context.Context) error {
	s.clears++
	return nil
}

func (s *stubTipsService) Subscribe(ctx context.Context) <-chan wellness.Event {
	if s.subscribeFn != nil {
		return s.subscribeFn(ctx)
	}
	ch := make(chan wellness.Event)
	close(ch)
	return ch
}

type stubSettingsService struct {
	lang settings.Language
}

func (s *stubSettingsService) Language(context.Context) (settings.Language, error) {
	return s.lang, nil
}

func (s *stubSettingsService) SetLanguage(_ context.Context, code string) (settings.Language, error) {
	s.lang = settings.Normalize(code)
	return s.lang, nil
}

func (s *stubSettingsService) Supported() []settings.LanguageOption {
	return settings.Supported()
}

var (
	_ profile.Service  = (*stubProfileService)(nil)
	_ wellness.Service = (*stubTipsService)(nil)
	_ settings.Service = (*stubSettingsService)(nil)
)
