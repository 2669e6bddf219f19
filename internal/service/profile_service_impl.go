package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, id)
}

// Save validates p and stores it. A new profile with no cycle phase gets
// "none" so reads never see an empty phase.
func (s *profileService) Save(ctx context.Context, p *domain.Profile) (err error) {
	defer observe(ctx, s.observer, "save-profile", time.Now(), &err, map[string]any{"profile_id": p.ID})

	if p.CyclePhase == "" {
		p.CyclePhase = domain.CycleNone
	}
	if err = p.Validate(); err != nil {
		return err
	}
	if existing, getErr := s.profiles.Get(ctx, p.ID); getErr == nil {
		p.CreatedAt = existing.CreatedAt
	} else if !errors.Is(getErr, repository.ErrNotFound) {
		err = fmt.Errorf("loading profile: %w", getErr)
		return err
	}
	return s.profiles.Upsert(ctx, p)
}
