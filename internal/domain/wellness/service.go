package wellness

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
	apperrors "github.com/yanqian/wellness-tips/pkg/errors"
	"github.com/yanqian/wellness-tips/pkg/metrics"
	"github.com/yanqian/wellness-tips/pkg/util"
)

// Service orchestrates tip generation, favorites, expansion and translation.
type Service interface {
	GenerateTips(ctx context.Context) ([]Tip, error)
	ExpandTip(ctx context.Context, id string) (Tip, error)
	ToggleFavorite(ctx context.Context, id string, favorite bool) (ToggleResult, error)
	TranslateTips(ctx context.Context, language string) (TranslationReport, error)
	SwitchLanguage(ctx context.Context, language string) (settings.Language, TranslationReport, error)
	ListTips(ctx context.Context, view View) ([]Tip, error)
	GetTip(ctx context.Context, id string) (Tip, error)
	ClearTips(ctx context.Context) error
	Subscribe(ctx context.Context) <-chan Event
}

type service struct {
	cfg        Config
	tips       TipRepository
	profiles   ProfileReader
	generator  Generator
	translator Translator
	languages  LanguageSettings
	events     *Broadcaster
	metrics    *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewService wires the tip orchestrator.
func NewService(cfg Config, tips TipRepository, profiles ProfileReader, generator Generator, translator Translator, languages LanguageSettings, events *Broadcaster, recorder *metrics.Recorder, logger *slog.Logger) Service {
	if events == nil {
		events = NewBroadcaster()
	}
	return &service{
		cfg:        cfg,
		tips:       tips,
		profiles:   profiles,
		generator:  generator,
		translator: translator,
		languages:  languages,
		events:     events,
		metrics:    recorder,
		logger:     logger.With("component", "wellness.service"),
		now:        util.NowUTC,
	}
}

// GenerateTips replaces the current batch. Generation and parse failures degrade
// to the fallback batch; favorites are demoted, never removed.
func (s *service) GenerateTips(ctx context.Context) ([]Tip, error) {
	p, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	lang := s.language(ctx)

	before := s.favoriteCount(ctx)
	s.logger.Info("regenerating tips", "favorites", before, "language", lang)

	if err := s.tips.MarkAllOldGeneration(ctx); err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to demote current tips", err)
	}

	now := s.now()
	var batch []Tip
	result, err := s.generator.GenerateContent(ctx, s.request(BuildTipsPrompt(p, lang)))
	if err != nil {
		s.logger.Warn("tip generation failed, using fallback tips", "error", err)
		s.metrics.ObserveGeneration(metrics.OutcomeError)
		batch = FallbackTips(now)
	} else {
		s.metrics.ObserveUsage(result.Usage)
		var fallback bool
		batch, fallback = ParseTips(result.Text, now)
		if fallback {
			s.logger.Warn("tip response unparseable, using fallback tips", "content_length", len(result.Text), "finish_reason", result.FinishReason)
			s.metrics.ObserveGeneration(metrics.OutcomeFallback)
		} else {
			s.metrics.ObserveGeneration(metrics.OutcomeModel)
		}
	}

	batch, err = s.assignFreshIDs(ctx, batch)
	if err != nil {
		return nil, err
	}
	if err := s.tips.Upsert(ctx, batch...); err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to store generated tips", err)
	}

	after := s.favoriteCount(ctx)
	s.logger.Info("tips regenerated", "count", len(batch), "favorites_before", before, "favorites_after", after)
	s.publish(EventGenerated, tipIDs(batch)...)
	return batch, nil
}

// assignFreshIDs re-keys tips whose id already exists in the store or repeats within
// the batch so an upsert can never overwrite a preserved tip.
func (s *service) assignFreshIDs(ctx context.Context, batch []Tip) ([]Tip, error) {
	seen := make(map[string]struct{}, len(batch))
	for i := range batch {
		id := batch[i].ID
		_, collides := seen[id]
		if !collides {
			_, exists, err := s.tips.Get(ctx, id)
			if err != nil {
				return nil, apperrors.Wrap("storage_error", "failed to check tip id", err)
			}
			collides = exists
		}
		if collides {
			fresh := "tip_" + uuid.NewString()
			s.logger.Debug("tip id collision, re-keyed", "id", id, "new_id", fresh)
			batch[i].ID = fresh
		}
		seen[batch[i].ID] = struct{}{}
	}
	return batch, nil
}

func (s *service) ExpandTip(ctx context.Context, id string) (Tip, error) {
	tip, err := s.GetTip(ctx, id)
	if err != nil {
		return Tip{}, err
	}
	p, err := s.loadProfile(ctx)
	if err != nil {
		return Tip{}, err
	}

	result, err := s.generator.GenerateContent(ctx, s.request(BuildExpansionPrompt(tip, p, s.language(ctx))))
	if err != nil {
		s.metrics.ObserveExpansion(metrics.OutcomeError)
		return Tip{}, apperrors.Wrap("llm_error", "failed to expand tip", err)
	}
	s.metrics.ObserveUsage(result.Usage)

	expanded, fallback := ParseExpansion(tip, result.Text)
	if fallback {
		s.logger.Warn("expansion response unparseable, using fallback text", "tip_id", id)
		s.metrics.ObserveExpansion(metrics.OutcomeFallback)
	} else {
		s.metrics.ObserveExpansion(metrics.OutcomeModel)
	}
	if err := s.tips.Update(ctx, expanded); err != nil {
		return Tip{}, apperrors.Wrap("storage_error", "failed to store expanded tip", err)
	}
	s.publish(EventExpanded, id)
	return expanded, nil
}

// ToggleFavorite sets the flag, or on removal deletes old-generation tips outright.
func (s *service) ToggleFavorite(ctx context.Context, id string, favorite bool) (ToggleResult, error) {
	res := ToggleResult{TipID: id}
	if favorite {
		if err := s.tips.SetFavorite(ctx, id, true); err != nil {
			return res, apperrors.Wrap("storage_error", "failed to update favorite", err)
		}
		tip, ok, err := s.tips.Get(ctx, id)
		if err != nil {
			return res, apperrors.Wrap("storage_error", "failed to load tip", err)
		}
		if !ok {
			s.logger.Warn("tip not found when adding favorite", "tip_id", id)
			return res, nil
		}
		res.Found = true
		res.Tip = &tip
		s.publish(EventFavorited, id)
		return res, nil
	}

	tip, ok, err := s.tips.Get(ctx, id)
	if err != nil {
		return res, apperrors.Wrap("storage_error", "failed to load tip", err)
	}
	if !ok {
		s.logger.Warn("tip not found when removing favorite", "tip_id", id)
		return res, nil
	}
	res.Found = true

	if tip.IsCurrentGeneration {
		if err := s.tips.SetFavorite(ctx, id, false); err != nil {
			return res, apperrors.Wrap("storage_error", "failed to update favorite", err)
		}
		tip.IsFavorite = false
		res.Tip = &tip
		s.publish(EventUnfavorited, id)
		return res, nil
	}

	s.logger.Info("removing old generation tip with its favorite", "tip_id", id)
	if err := s.tips.Delete(ctx, id); err != nil {
		return res, apperrors.Wrap("storage_error", "failed to delete tip", err)
	}
	res.Deleted = true
	s.publish(EventDeleted, id)
	return res, nil
}

// TranslateTips rewrites the current tips one by one. Upstream rejections and short
// responses skip the tip; any other client error aborts the pass.
func (s *service) TranslateTips(ctx context.Context, language string) (TranslationReport, error) {
	target := settings.Normalize(language)
	report := TranslationReport{Target: target, Translated: []string{}, Skipped: []string{}}

	tips, err := s.tips.List(ctx, ViewCurrent)
	if err != nil {
		return report, apperrors.Wrap("storage_error", "failed to load tips", err)
	}

	for _, tip := range tips {
		sources := translationSources(tip)
		translated, err := s.translator.Translate(ctx, sources, target.String())
		if err != nil {
			if IsUpstreamError(err) {
				s.logger.Warn("translation rejected, tip skipped", "tip_id", tip.ID, "error", err)
				s.metrics.ObserveTranslation(metrics.OutcomeSkipped)
				report.Skipped = append(report.Skipped, tip.ID)
				continue
			}
			return report, apperrors.Wrap("translation_error", "failed to translate tips", err)
		}
		if len(translated) < len(sources) {
			s.logger.Warn("insufficient translations, tip skipped", "tip_id", tip.ID, "want", len(sources), "got", len(translated))
			s.metrics.ObserveTranslation(metrics.OutcomeSkipped)
			report.Skipped = append(report.Skipped, tip.ID)
			continue
		}
		if err := s.tips.Update(ctx, applyTranslation(tip, translated)); err != nil {
			return report, apperrors.Wrap("storage_error", "failed to store translated tip", err)
		}
		s.metrics.ObserveTranslation(metrics.OutcomeTranslated)
		report.Translated = append(report.Translated, tip.ID)
	}

	s.logger.Info("tips translated", "target", target, "translated", len(report.Translated), "skipped", len(report.Skipped))
	if len(report.Translated) > 0 {
		s.publish(EventTranslated, report.Translated...)
	}
	return report, nil
}

// SwitchLanguage persists the language first, then translates when it changed.
func (s *service) SwitchLanguage(ctx context.Context, language string) (settings.Language, TranslationReport, error) {
	previous, err := s.languages.Language(ctx)
	if err != nil {
		s.logger.Warn("failed to read previous language", "error", err)
	}
	lang, err := s.languages.SetLanguage(ctx, language)
	if err != nil {
		return "", TranslationReport{}, err
	}
	if lang == previous {
		return lang, TranslationReport{Target: lang, Translated: []string{}, Skipped: []string{}}, nil
	}
	report, err := s.TranslateTips(ctx, lang.String())
	return lang, report, err
}

func (s *service) ListTips(ctx context.Context, view View) ([]Tip, error) {
	tips, err := s.tips.List(ctx, view)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list tips", err)
	}
	if tips == nil {
		tips = []Tip{}
	}
	return tips, nil
}

func (s *service) GetTip(ctx context.Context, id string) (Tip, error) {
	if strings.TrimSpace(id) == "" {
		return Tip{}, apperrors.Wrap("invalid_input", "tip id is required", nil)
	}
	tip, ok, err := s.tips.Get(ctx, id)
	if err != nil {
		return Tip{}, apperrors.Wrap("storage_error", "failed to load tip", err)
	}
	if !ok {
		return Tip{}, apperrors.Wrap("not_found", "tip not found", nil)
	}
	return tip, nil
}

func (s *service) ClearTips(ctx context.Context) error {
	if err := s.tips.DeleteAll(ctx); err != nil {
		return apperrors.Wrap("storage_error", "failed to clear tips", err)
	}
	s.logger.Info("all tips cleared")
	s.publish(EventCleared)
	return nil
}

func (s *service) Subscribe(ctx context.Context) <-chan Event {
	return s.events.Subscribe(ctx)
}

func (s *service) loadProfile(ctx context.Context) (profile.UserProfile, error) {
	p, ok, err := s.profiles.Get(ctx)
	if err != nil {
		return profile.UserProfile{}, apperrors.Wrap("storage_error", "failed to load profile", err)
	}
	if !ok {
		return profile.UserProfile{}, apperrors.Wrap("not_found", "profile not found", nil)
	}
	return p, nil
}

func (s *service) language(ctx context.Context) settings.Language {
	if s.languages == nil {
		return settings.English
	}
	lang, err := s.languages.Language(ctx)
	if err != nil {
		s.logger.Warn("failed to read language, using english", "error", err)
		return settings.English
	}
	return lang
}

func (s *service) favoriteCount(ctx context.Context) int {
	favorites, err := s.tips.List(ctx, ViewFavorites)
	if err != nil {
		s.logger.Warn("failed to count favorites", "error", err)
		return 0
	}
	return len(favorites)
}

func (s *service) request(prompt string) GenerationRequest {
	return GenerationRequest{
		Prompt:          prompt,
		Temperature:     s.cfg.Temperature,
		TopK:            s.cfg.TopK,
		TopP:            s.cfg.TopP,
		MaxOutputTokens: s.cfg.MaxOutputTokens,
	}
}

func (s *service) publish(kind EventType, ids ...string) {
	s.events.Publish(Event{Type: kind, TipIDs: ids, At: s.now()})
}

// translationSources flattens the textual fields: title, summary, explanation, steps, category.
// Blank entries become a single space since the translation API rejects empty strings.
func translationSources(tip Tip) []string {
	sources := make([]string, 0, len(tip.StepByStepGuide)+4)
	sources = append(sources, tip.Title, tip.Summary, tip.DetailedExplanation)
	sources = append(sources, tip.StepByStepGuide...)
	sources = append(sources, tip.Category)
	for i, src := range sources {
		if strings.TrimSpace(src) == "" {
			sources[i] = " "
		}
	}
	return sources
}

func applyTranslation(tip Tip, translated []string) Tip {
	idx := 0
	next := func() string {
		v := translated[idx]
		idx++
		return v
	}
	tip.Title = next()
	tip.Summary = next()
	tip.DetailedExplanation = next()
	steps := make([]string, len(tip.StepByStepGuide))
	for i := range steps {
		steps[i] = next()
	}
	tip.StepByStepGuide = steps
	tip.Category = next()
	return tip
}

func tipIDs(tips []Tip) []string {
	ids := make([]string, 0, len(tips))
	for _, t := range tips {
		ids = append(ids, t.ID)
	}
	return ids
}
