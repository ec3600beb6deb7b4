package seeders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Rakhulsr/cloth-cafe/app/repositories"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"go.uber.org/zap"
)

type Seeder struct {
	Key   store.Key
	Value interface{}
}

func SeedersRegister() []Seeder {
	d := Defaults()
	return []Seeder{
		{Key: store.KeyProducts, Value: d.Products},
		{Key: store.KeyCategories, Value: d.Categories},
		{Key: store.KeyConfig, Value: d.Config},
	}
}

// DBSeed writes the default catalog and site config. Existing keys are kept
// unless force is set.
func DBSeed(ctx context.Context, repo repositories.KVRepository, force bool, logger *zap.Logger) error {
	for _, seeder := range SeedersRegister() {
		key := seeder.Key.StorageKey()

		if !force {
			_, found, err := repo.Get(ctx, key)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", key, err)
			}
			if found {
				logger.Info("seed: key already present, skipping", zap.String("key", key))
				continue
			}
		}

		payload, err := json.Marshal(seeder.Value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		if err := repo.Set(ctx, key, string(payload)); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
		logger.Info("seed: wrote key", zap.String("key", key))
	}
	return nil
}
