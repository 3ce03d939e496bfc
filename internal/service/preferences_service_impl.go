package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/repository"
)

type preferencesService struct {
	prefs repository.PreferencesRepo
}

func NewPreferencesService(prefs repository.PreferencesRepo) PreferencesService {
	return &preferencesService{prefs: prefs}
}

func (s *preferencesService) Get(ctx context.Context) (*domain.Preferences, error) {
	return s.prefs.Get(ctx)
}

func (s *preferencesService) Update(ctx context.Context, p *domain.Preferences) error {
	if p.DefaultView != "daily" && p.DefaultView != "weekly" {
		return fmt.Errorf("invalid default view %q (expected daily or weekly)", p.DefaultView)
	}
	if p.ID == "" {
		p.ID = "default"
	}
	return s.prefs.Upsert(ctx, p)
}
