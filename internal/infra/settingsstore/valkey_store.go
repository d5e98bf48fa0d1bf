package settingsstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/wellness-tips/internal/domain/settings"
)

// ValkeyStore persists settings in a Valkey-compatible database so they survive restarts.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "wellness"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetLanguage(ctx context.Context) (string, bool, error) {
	result := s.client.Do(ctx, s.client.B().Get().Key(s.languageKey()).Build())
	code, err := result.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return code, true, nil
}

func (s *ValkeyStore) SetLanguage(ctx context.Context, code string) error {
	return s.client.Do(ctx, s.client.B().Set().Key(s.languageKey()).Value(code).Build()).Error()
}

func (s *ValkeyStore) languageKey() string {
	return fmt.Sprintf("%s:language", s.prefix)
}

var _ settings.Store = (*ValkeyStore)(nil)
