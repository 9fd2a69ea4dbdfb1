package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/investprofile/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investprofile/internal/common"
	"github.com/dmitrijs2005/investprofile/internal/logging"
)

var testKeys = kv.NewKeys("@InvestApp:")

// newAuth builds an AuthService the way the app does at startup: load the
// credential store from store, then wire the service over it.
func newAuth(store kv.Store, opts AuthOptions) AuthService {
	accts := accounts.NewStore(store, testKeys, logging.Discard())
	accts.Load(context.Background())
	return NewAuthService(accts, store, testKeys, opts, logging.Discard())
}

// faultyStore wraps a MemoryStore and fails the operations it is told to.
type faultyStore struct {
	*kv.MemoryStore
	failGet    bool
	failWrites bool
	// failSetManyOn fails only SetMany calls that touch this key
	failSetManyOn string
}

func newFaultyStore() *faultyStore {
	return &faultyStore{MemoryStore: kv.NewMemoryStore()}
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.failGet {
		return nil, false, errors.Join(common.ErrStorageRead, errors.New("io error"))
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failWrites {
		return errors.Join(common.ErrStorageWrite, errors.New("disk full"))
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *faultyStore) SetMany(ctx context.Context, values map[string][]byte) error {
	_, hit := values[f.failSetManyOn]
	if f.failWrites || (f.failSetManyOn != "" && hit) {
		return errors.Join(common.ErrStorageWrite, errors.New("disk full"))
	}
	return f.MemoryStore.SetMany(ctx, values)
}

func (f *faultyStore) Delete(ctx context.Context, keys ...string) error {
	if f.failWrites {
		return errors.Join(common.ErrStorageWrite, errors.New("disk full"))
	}
	return f.MemoryStore.Delete(ctx, keys...)
}
