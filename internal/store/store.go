// Package store holds the in-memory user store.
package store

import (
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/dusk-indust/userstore/internal/user"
)

// MaxUsers is the default capacity of a UserStore.
const MaxUsers = 1000

type seedUser struct {
	id     int
	name   string
	email  string
	role   user.Role
	active bool
}

var defaultUsers = []seedUser{
	{1, "Alice", "alice@example.com", user.RoleAdmin, true},
	{2, "Bob", "bob@example.com", user.RoleUser, true},
	{3, "Charlie", "charlie@example.com", user.RoleUser, false},
}

// Filter selects users in Find. Nil fields match everything.
type Filter struct {
	Role   *user.Role
	Active *bool
}

func (f Filter) matches(u user.User) bool {
	if f.Role != nil && u.Role() != *f.Role {
		return false
	}
	if f.Active != nil && u.Active() != *f.Active {
		return false
	}
	return true
}

// Option configures a UserStore.
type Option func(*UserStore)

// WithMaxUsers overrides the capacity. Values <= 0 keep the default.
func WithMaxUsers(n int) Option {
	return func(s *UserStore) {
		if n > 0 {
			s.maxUsers = n
		}
	}
}

// WithLogger sets the logger used for store events.
func WithLogger(l *log.Logger) Option {
	return func(s *UserStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *UserStore) {
		if now != nil {
			s.now = now
		}
	}
}

// UserStore is a concurrency-safe in-memory store of user records keyed by
// id. Creates hold the write lock from the capacity check through insertion,
// so ids assigned as max+1 stay unique under concurrent use.
type UserStore struct {
	mu       sync.RWMutex
	users    map[int]user.User
	maxUsers int
	logger   *log.Logger
	now      func() time.Time
}

// New returns a UserStore seeded with the three default users.
func New(opts ...Option) *UserStore {
	s := &UserStore{
		users:    make(map[int]user.User),
		maxUsers: MaxUsers,
		logger:   log.New(io.Discard, "", 0),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	createdAt := s.now()
	for _, d := range defaultUsers {
		u, err := user.New(d.id, d.name, d.email, d.role, d.active, createdAt)
		if err != nil {
			panic("store: invalid default user: " + err.Error())
		}
		s.users[u.ID()] = u
	}
	s.logger.Printf("store: seeded users=%d max=%d", len(s.users), s.maxUsers)
	return s
}

// Get returns the user with the given id, or a failure wrapping a
// *NotFoundError.
func (s *UserStore) Get(id int) user.Result[user.User] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.Fail[user.User](&NotFoundError{ID: id})
	}
	return user.Ok(u)
}

// FindByRole returns the active users holding role, ordered by id.
func (s *UserStore) FindByRole(role user.Role) []user.User {
	active := true
	return s.Find(Filter{Role: &role, Active: &active})
}

// ActiveUsers returns every active user regardless of role, ordered by id.
func (s *UserStore) ActiveUsers() []user.User {
	active := true
	return s.Find(Filter{Active: &active})
}

// Find returns every user matching filter, ordered by id. The result is never
// nil.
func (s *UserStore) Find(filter Filter) []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]user.User, 0)
	for _, u := range s.users {
		if filter.matches(u) {
			results = append(results, u)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID() < results[j].ID()
	})
	return results
}

// Create adds an active user with id max(existing)+1. It fails with a
// *CapacityError when the store is full, with a *user.ValidationError when
// email is malformed and with a *user.RoleError when role is not one of
// user.Roles. The store is left unchanged on failure.
func (s *UserStore) Create(name, email string, role user.Role) user.Result[user.User] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) >= s.maxUsers {
		err := &CapacityError{Max: s.maxUsers}
		s.logger.Printf("store: create rejected reason=%q", err.Error())
		return user.Fail[user.User](err)
	}

	u, err := user.New(s.nextID(), name, email, role, true, s.now())
	if err != nil {
		s.logger.Printf("store: create rejected reason=%q", err.Error())
		return user.Fail[user.User](err)
	}

	s.users[u.ID()] = u
	s.logger.Printf("store: created id=%d role=%s", u.ID(), u.Role())
	return user.Ok(u)
}

// Len returns the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// nextID must be called with s.mu held.
func (s *UserStore) nextID() int {
	maxID := 0
	for id := range s.users {
		maxID = max(maxID, id)
	}
	return maxID + 1
}
