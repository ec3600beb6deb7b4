package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/repositories"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingRelay struct {
	mu       sync.Mutex
	payloads []RelayPayload
	err      error
}

func (r *recordingRelay) Submit(_ context.Context, payload RelayPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return r.err
}

func (r *recordingRelay) sent() []RelayPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RelayPayload{}, r.payloads...)
}

type fixture struct {
	repo    repositories.KVRepository
	store   *store.Store
	metrics *metrics.Metrics
	relay   *recordingRelay
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "ESPRESSO BLACK OVERSIZED", Price: 1000, Category: models.CategoryTShirts, Collection: models.CollectionSummer, Stock: 12, RewardPoints: 1000},
		{ID: "p2", Name: "LATTE CREAM ESSENTIAL", Price: 350, Category: models.CategoryTShirts, Collection: models.CollectionSummer, Stock: 8, RewardPoints: 350},
		{ID: "p3", Name: "ARCTIC HEAVY HOODIE", Price: 1200, Category: models.CategoryHoodies, Collection: models.CollectionWinter, Stock: 4, RewardPoints: 1200, IsBestSelling: true},
		{ID: "p4", Name: "Dad Cap", Price: 300, Category: models.CategoryHats, Stock: 20, RewardPoints: 300, IsBestSelling: true},
	}
}

// newFixture loads a store over an in-memory backend. seed values are JSON
// encoded under their namespaced keys.
func newFixture(t *testing.T, seed map[store.Key]any) *fixture {
	t.Helper()

	raw := map[string]string{}
	for k, v := range seed {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		raw[k.StorageKey()] = string(b)
	}

	repo := repositories.NewMemoryKVRepository(raw)
	st, err := store.Load(context.Background(), repo, store.Defaults{
		Products:   testProducts(),
		Categories: []models.Category{{ID: "winter", Name: "Winter Collection"}},
		Config:     models.SiteConfig{HeroTitle: "Brewing Style Daily"},
	}, zap.NewNop())
	require.NoError(t, err)

	return &fixture{
		repo:    repo,
		store:   st,
		metrics: metrics.New(prometheus.NewRegistry()),
		relay:   &recordingRelay{},
	}
}

// stored decodes what the backend holds for key.
func stored[T any](t *testing.T, f *fixture, key store.Key) T {
	t.Helper()
	var v T
	raw, found, err := f.repo.Get(context.Background(), key.StorageKey())
	require.NoError(t, err)
	require.True(t, found, "key %s not written", key)
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func (f *fixture) orders() *OrderService {
	return NewOrderService(f.store, f.relay, f.metrics, zap.NewNop())
}

func (f *fixture) memberships() *MembershipService {
	return NewMembershipService(f.store, f.relay, f.metrics, zap.NewNop())
}

func testShipping() models.ShippingDetails {
	return models.ShippingDetails{
		CustomerName: "Rafi Ahmed",
		Email:        "rafi@example.com",
		Phone:        "01711000000",
		Address:      "House 12, Road 5",
		Thana:        "Dhanmondi",
		District:     "Dhaka",
		Area:         "Dhanmondi 27",
	}
}

func testMember(code string) models.Member {
	return models.Member{ID: "m-" + code, Name: "Nadia", MembershipCode: code}
}
