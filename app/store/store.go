package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Rakhulsr/cloth-cafe/app/repositories"
	"go.uber.org/zap"
)

// Store owns the storefront state. It is read once from the backend at
// startup and every mutation is written through before it becomes visible.
type Store struct {
	mu     sync.RWMutex
	repo   repositories.KVRepository
	state  State
	logger *zap.Logger
}

func Load(ctx context.Context, repo repositories.KVRepository, defaults Defaults, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{repo: repo, logger: logger}

	s.state = State{
		Products:   cloneSlice(defaults.Products),
		Categories: cloneSlice(defaults.Categories),
		Config:     defaults.Config,
	}

	for _, key := range AllKeys {
		raw, found, err := repo.Get(ctx, key.StorageKey())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", key.StorageKey(), err)
		}

		if !found {
			if key == KeyProducts || key == KeyCategories {
				if err := s.write(ctx, &s.state, key); err != nil {
					return nil, fmt.Errorf("failed to seed %s: %w", key.StorageKey(), err)
				}
				logger.Info("seeded default data", zap.String("key", key.StorageKey()))
			}
			continue
		}

		if err := s.decode(key, raw, defaults); err != nil {
			logger.Warn("stored value is malformed, falling back to default",
				zap.String("key", key.StorageKey()),
				zap.Error(err),
			)
		}
	}

	logger.Info("store loaded",
		zap.Int("products", len(s.state.Products)),
		zap.Int("orders", len(s.state.Orders)),
		zap.Int("members", len(s.state.Members)),
	)
	return s, nil
}

var errNullValue = errors.New("stored value is null")

// decodeNonNull is decodeInto for keys whose default must survive a stored
// JSON null.
func decodeNonNull[T any](raw string, dst *T) error {
	if bytes.Equal(bytes.TrimSpace([]byte(raw)), []byte("null")) {
		return errNullValue
	}
	return decodeInto(raw, dst)
}

// decodeInto only assigns dst when raw decodes cleanly, so a half-decoded
// value never survives.
func decodeInto[T any](raw string, dst *T) error {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return err
	}
	*dst = v
	return nil
}

// decode replaces one field of the state, leaving the default in place on
// error.
func (s *Store) decode(key Key, raw string, defaults Defaults) error {
	st := &s.state
	switch key {
	case KeyProducts:
		return decodeNonNull(raw, &st.Products)
	case KeyCategories:
		return decodeNonNull(raw, &st.Categories)
	case KeyOrders:
		return decodeInto(raw, &st.Orders)
	case KeyMembershipRequests:
		return decodeInto(raw, &st.MembershipRequests)
	case KeyMembers:
		return decodeInto(raw, &st.Members)
	case KeyCart:
		return decodeInto(raw, &st.Cart)
	case KeyUserPoints:
		var points int64
		if err := decodeInto(raw, &points); err != nil {
			return err
		}
		if points < 0 {
			return fmt.Errorf("negative point balance %d", points)
		}
		st.Points = points
	case KeyConfig:
		// Stored fields are laid over the defaults so newly added settings
		// keep their default value.
		cfg := defaults.Config
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return err
		}
		st.Config = cfg
	case KeyUserProfile:
		return decodeInto(raw, &st.Profile)
	}
	return nil
}

func (s *Store) encode(st *State, key Key) ([]byte, error) {
	switch key {
	case KeyProducts:
		return json.Marshal(st.Products)
	case KeyCategories:
		return json.Marshal(st.Categories)
	case KeyOrders:
		return json.Marshal(st.Orders)
	case KeyMembershipRequests:
		return json.Marshal(st.MembershipRequests)
	case KeyMembers:
		return json.Marshal(st.Members)
	case KeyCart:
		return json.Marshal(st.Cart)
	case KeyUserPoints:
		return json.Marshal(st.Points)
	case KeyConfig:
		return json.Marshal(st.Config)
	case KeyUserProfile:
		return json.Marshal(st.Profile)
	}
	return nil, fmt.Errorf("unknown store key %q", key)
}

func (s *Store) write(ctx context.Context, st *State, key Key) error {
	payload, err := s.encode(st, key)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, key.StorageKey(), string(payload))
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update applies fn to a copy of the state, persists the listed keys and only
// then publishes the new state. If fn fails nothing is written.
func (s *Store) Update(ctx context.Context, fn func(st *State) error, keys ...Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.write(ctx, &next, key); err != nil {
			s.logger.Error("failed to persist store key", zap.String("key", key.StorageKey()), zap.Error(err))
			return fmt.Errorf("failed to persist %s: %w", key.StorageKey(), err)
		}
	}

	s.state = next
	return nil
}
