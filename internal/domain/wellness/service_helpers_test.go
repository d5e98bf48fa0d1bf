package wellness

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
)

func newTestService(repo TipRepository, gen Generator, tr Translator) *service {
	return &service{
		cfg:        DefaultConfig(),
		tips:       repo,
		profiles:   &stubProfiles{profile: sampleProfile(), ok: true},
		generator:  gen,
		translator: tr,
		languages:  &stubLanguages{lang: settings.English},
		events:     NewBroadcaster(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        fixedNow,
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
}

func sampleProfile() profile.UserProfile {
	return profile.Normalize(profile.UserProfile{
		Name:        "Asha",
		Age:         30,
		Gender:      profile.GenderFemale,
		PrimaryGoal: profile.GoalWeightLoss,
	})
}

type memoryTips struct {
	mu      sync.Mutex
	records map[string]Tip
	err     error
	updates int
}

func newMemoryTips(tips ...Tip) *memoryTips {
	m := &memoryTips{records: make(map[string]Tip)}
	for _, t := range tips {
		m.records[t.ID] = t
	}
	return m
}

func (m *memoryTips) List(_ context.Context, view View) ([]Tip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []Tip{}
	for _, t := range m.records {
		switch {
		case view == ViewCurrent && !t.IsCurrentGeneration:
			continue
		case view == ViewFavorites && !t.IsFavorite:
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryTips) Get(_ context.Context, id string) (Tip, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Tip{}, false, m.err
	}
	t, ok := m.records[id]
	return t, ok, nil
}

func (m *memoryTips) Upsert(_ context.Context, tips ...Tip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, t := range tips {
		m.records[t.ID] = t
	}
	return nil
}

func (m *memoryTips) Update(_ context.Context, tip Tip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.records[tip.ID]; ok {
		m.records[tip.ID] = tip
		m.updates++
	}
	return nil
}

func (m *memoryTips) SetFavorite(_ context.Context, id string, favorite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.records[id]; ok {
		t.IsFavorite = favorite
		m.records[id] = t
	}
	return nil
}

func (m *memoryTips) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *memoryTips) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]Tip)
	return nil
}

func (m *memoryTips) MarkAllOldGeneration(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for id, t := range m.records {
		t.IsCurrentGeneration = false
		m.records[id] = t
	}
	return nil
}

type stubGenerator struct {
	responses []GenerationResult
	err       error
	calls     int
	prompts   []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, req GenerationRequest) (GenerationResult, error) {
	s.calls++
	s.prompts = append(s.prompts, req.Prompt)
	if s.err != nil {
		return GenerationResult{}, s.err
	}
	if len(s.responses) == 0 {
		return GenerationResult{}, nil
	}
	resp := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return resp, nil
}

type translateCall struct {
	texts  []string
	target string
}

type stubTranslator struct {
	// fn decides the response per call; nil echoes with a prefix.
	fn    func(call int, texts []string, target string) ([]string, error)
	calls []translateCall
}

func (s *stubTranslator) Translate(_ context.Context, texts []string, target string) ([]string, error) {
	s.calls = append(s.calls, translateCall{texts: texts, target: target})
	if s.fn != nil {
		return s.fn(len(s.calls)-1, texts, target)
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = target + ":" + t
	}
	return out, nil
}

type stubProfiles struct {
	profile profile.UserProfile
	ok      bool
	err     error
}

func (s *stubProfiles) Get(context.Context) (profile.UserProfile, bool, error) {
	return s.profile, s.ok, s.err
}

type stubLanguages struct {
	lang   settings.Language
	err    error
	setErr error
	sets   int
}

func (s *stubLanguages) Language(context.Context) (settings.Language, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.lang, nil
}

func (s *stubLanguages) SetLanguage(_ context.Context, code string) (settings.Language, error) {
	if s.setErr != nil {
		return "", s.setErr
	}
	s.sets++
	s.lang = settings.Normalize(code)
	return s.lang, nil
}

func storedTip(id string, current, favorite bool, created time.Time) Tip {
	return Tip{
		ID:                  id,
		Title:               "Title " + id,
		Summary:             "Summary " + id,
		DetailedExplanation: "Explanation " + id,
		StepByStepGuide:     []string{"one", "two"},
		Category:            "Fitness",
		Icon:                "🏃",
		IsFavorite:          favorite,
		IsCurrentGeneration: current,
		CreatedAt:           created,
	}
}
