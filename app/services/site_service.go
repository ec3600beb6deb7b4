package services

import (
	"context"

	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"go.uber.org/zap"
)

type SiteService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewSiteService(st *store.Store, logger *zap.Logger) *SiteService {
	return &SiteService{store: st, logger: logger}
}

func (s *SiteService) Config() models.SiteConfig {
	return s.store.Snapshot().Config
}

func (s *SiteService) UpdateConfig(ctx context.Context, cfg models.SiteConfig) (models.SiteConfig, error) {
	if err := validate.Struct(cfg); err != nil {
		return models.SiteConfig{}, err
	}

	err := s.store.Update(ctx, func(st *store.State) error {
		st.Config = cfg
		return nil
	}, store.KeyConfig)
	if err != nil {
		return models.SiteConfig{}, err
	}

	s.logger.Info("site config updated")
	return cfg, nil
}
