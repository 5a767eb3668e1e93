package services

import (
	"context"
	"errors"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db    Pinger
	redis Pinger
}

// NewHealthService checks the database and, when redis is non-nil, the
// revocation store.
func NewHealthService(db Pinger, redis Pinger) *HealthService {
	return &HealthService{db: db, redis: redis}
}

// Check returns the state of every dependency and a joined error when any
// of them is down.
func (s *HealthService) Check(ctx context.Context) (map[string]string, error) {
	status := map[string]string{}
	var errs []error

	ping := func(name string, p Pinger) {
		if p == nil {
			return
		}
		if err := p.Ping(ctx); err != nil {
			status[name] = "down"
			errs = append(errs, errors.New(name+": "+err.Error()))
			return
		}
		status[name] = "up"
	}
	ping("database", s.db)
	ping("redis", s.redis)

	return status, errors.Join(errs...)
}
