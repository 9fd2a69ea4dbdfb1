// Package accounts is the credential store: the immutable seed accounts plus
// the registered accounts, mirrored to the local key-value store.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investprofile/internal/common"
	"github.com/dmitrijs2005/investprofile/internal/logging"
)

// Store owns the registered accounts for the lifetime of the process.
// The persisted copy is written after every mutation and read once by Load.
type Store struct {
	kv   kv.Store
	keys kv.Keys
	log  logging.Logger

	mu         sync.RWMutex
	registered []models.Account
	// seq is the highest sequence number ever handed out; it never goes down.
	seq int64
}

func NewStore(store kv.Store, keys kv.Keys, log logging.Logger) *Store {
	return &Store{kv: store, keys: keys, log: log.With("component", "accounts")}
}

// Load reads the persisted registered accounts into memory. An absent or
// unreadable mirror leaves the set empty; failures are logged, not returned.
func (s *Store) Load(ctx context.Context) {
	var registered []models.Account
	if _, err := kv.GetJSON(ctx, s.kv, s.keys.RegisteredUsers, &registered); err != nil {
		s.log.Warn(ctx, "cannot load registered accounts, starting empty", "error", err)
		registered = nil
	}

	var seq int64
	if _, err := kv.GetJSON(ctx, s.kv, s.keys.RegisteredUsersSeq, &seq); err != nil {
		s.log.Warn(ctx, "cannot load account sequence", "error", err)
		seq = 0
	}
	// Mirrors written before the counter existed only have the list.
	seq = max(seq, int64(len(registered)))

	s.mu.Lock()
	s.registered = registered
	s.seq = seq
	s.mu.Unlock()

	s.log.Debug(ctx, "registered accounts loaded", "count", len(registered), "seq", seq)
}

// FindByEmail scans the seed accounts, then the registered accounts, and
// returns the first exact (case-sensitive) email match.
func (s *Store) FindByEmail(email string) (models.Account, bool) {
	for _, a := range Seeds() {
		if a.Email == email {
			return a, true
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.registered {
		if a.Email == email {
			return a, true
		}
	}
	return models.Account{}, false
}

// NextSequence is the number the next inserted account will get.
func (s *Store) NextSequence() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq + 1
}

// Insert appends acc and persists the full registered set together with the
// sequence counter. If the write fails nothing changes in memory either.
func (s *Store) Insert(ctx context.Context, acc models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]models.Account(nil), s.registered...), acc)

	list, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: encode registered accounts: %w", common.ErrStorageWrite, err)
	}

	seq := s.seq + 1
	err = s.kv.SetMany(ctx, map[string][]byte{
		s.keys.RegisteredUsers:    list,
		s.keys.RegisteredUsersSeq: []byte(strconv.FormatInt(seq, 10)),
	})
	if err != nil {
		return fmt.Errorf("insert account %s: %w", acc.ID, err)
	}

	s.registered = next
	s.seq = seq
	return nil
}

// Registered returns a copy of the registered accounts in insertion order.
func (s *Store) Registered() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Account(nil), s.registered...)
}
