package service

import "go.uber.org/zap"

type resettable interface {
	Reset()
}

// SessionService drops every cached resource on logout.
type SessionService struct {
	caches []resettable
}

func NewSessionService(caches ...resettable) *SessionService {
	return &SessionService{caches: caches}
}

func (s *SessionService) Reset() {
	for _, c := range s.caches {
		c.Reset()
	}
	zap.L().Info("session caches reset", zap.Int("caches", len(s.caches)))
}
