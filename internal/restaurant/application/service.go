package application

import (
	"context"
	"sync"

	"github.com/sahilmehra/zaika/internal/restaurant/domain"
)

// Service owns the live restaurant settings. Reads hugely outnumber
// writes; every pricing call takes a snapshot.
type Service struct {
	mu       sync.RWMutex
	settings domain.Settings
}

func NewService(initial domain.Settings) *Service {
	return &Service{settings: initial}
}

func (s *Service) Settings(_ context.Context) domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Service) Update(_ context.Context, settings domain.Settings) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings
}

func (s *Service) SetLive(_ context.Context, live bool) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Live = live
	return s.settings
}
