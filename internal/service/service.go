package service

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/tripadvisor"
)

// Service provides business logic for the API
type Service struct {
	api    tripadvisor.ContentAPI
	logger *zap.Logger
	intn   func(n int) int
}

// NewService creates a new service instance
func NewService(api tripadvisor.ContentAPI, logger *zap.Logger) *Service {
	return &Service{
		api:    api,
		logger: logger.Named("service"),
		intn:   rand.IntN,
	}
}

// pick returns a uniformly random index in [0, n)
func (s *Service) pick(n int) int {
	return s.intn(n)
}
