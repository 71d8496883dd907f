package service

import (
	"log"
	"sync"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

// SessionService is the single source of truth for who is logged in. The
// prototype tracks exactly one profile; every mutation overwrites the durable
// snapshot unconditionally, last write wins.
type SessionService interface {
	// Current returns the logged-in profile, or nil when anonymous.
	Current() *model.UserProfile
	// Set replaces the session. A non-nil profile is written to the durable
	// snapshot; nil erases it.
	Set(profile *model.UserProfile) error
	// Update shallow-merges the given fields into the current profile and
	// persists the result. Without a session it is a no-op returning nil.
	Update(update model.ProfileUpdate) (*model.UserProfile, error)
	// Logout is Set(nil).
	Logout() error
	// Subscribe registers fn to run after every session change, receiving the
	// new profile (nil on logout). The returned func cancels the subscription.
	Subscribe(fn func(*model.UserProfile)) func()
}

type sessionService struct {
	repo repository.SessionRepository

	mu          sync.RWMutex
	current     *model.UserProfile
	subscribers map[int]func(*model.UserProfile)
	nextSubID   int
}

// NewSessionService creates a SessionService and restores the stored snapshot.
// A corrupt or unreadable snapshot starts the service anonymous; it never
// fails construction.
func NewSessionService(repo repository.SessionRepository) SessionService {
	s := &sessionService{
		repo:        repo,
		subscribers: make(map[int]func(*model.UserProfile)),
	}
	profile, err := repo.Load()
	if err != nil {
		log.Printf("Could not restore session snapshot, starting anonymous: %v", err)
		return s
	}
	s.current = profile
	return s
}

func (s *sessionService) Current() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	p := *s.current
	return &p
}

func (s *sessionService) Set(profile *model.UserProfile) error {
	s.mu.Lock()
	if profile == nil {
		s.current = nil
	} else {
		p := *profile
		s.current = &p
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	var err error
	if profile == nil {
		err = s.repo.Clear()
	} else {
		err = s.repo.Save(profile)
	}

	s.notify(subs)
	return err
}

func (s *sessionService) Update(update model.ProfileUpdate) (*model.UserProfile, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, nil
	}
	if update.Name != nil {
		s.current.Name = *update.Name
	}
	if update.Email != nil {
		s.current.Email = *update.Email
	}
	if update.Phone != nil {
		s.current.Phone = *update.Phone
	}
	if update.Location != nil {
		s.current.Location = *update.Location
	}
	if update.PaymentMethods != nil {
		s.current.PaymentMethods = *update.PaymentMethods
	}
	merged := *s.current
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	err := s.repo.Save(&merged)
	s.notify(subs)
	return &merged, err
}

func (s *sessionService) Logout() error {
	return s.Set(nil)
}

func (s *sessionService) Subscribe(fn func(*model.UserProfile)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *sessionService) snapshotSubscribers() []func(*model.UserProfile) {
	subs := make([]func(*model.UserProfile), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func (s *sessionService) notify(subs []func(*model.UserProfile)) {
	current := s.Current()
	for _, fn := range subs {
		fn(current)
	}
}
