package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/investprofile/internal/common"
)

// GetJSON loads key and unmarshals it into v. It returns ok=false when the key
// is absent. A value that is not valid JSON for v is an ErrStorageRead.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: decode %s: %w", common.ErrStorageRead, key, err)
	}
	return true, nil
}

// SetJSON marshals v and stores it under key, replacing any previous value.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", common.ErrStorageWrite, key, err)
	}
	return s.Set(ctx, key, data)
}
