package handlers

import (
	"context"
	"sync"

	"github.com/vaughan-dsouza/expert/internal/auth"
	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/store"
)

type fakeAuth struct {
	token string
	err   error
	got   any
}

func (f *fakeAuth) Signup(_ context.Context, req auth.SignupRequest) (string, error) {
	f.got = req
	return f.token, f.err
}

func (f *fakeAuth) Signin(_ context.Context, req auth.SigninRequest) (string, error) {
	f.got = req
	return f.token, f.err
}

// plainHasher treats "hashed:"+raw as the hash of raw.
type plainHasher struct{}

func (plainHasher) Encode(raw string) (string, error) { return "hashed:" + raw, nil }
func (plainHasher) Matches(raw, hash string) bool     { return "hashed:"+raw == hash }

type memStore struct {
	mu       sync.Mutex
	users    map[int64]*models.User
	todos    map[int64]*models.Todo
	comments map[int64]*models.Comment
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*models.User{},
		todos:    map[int64]*models.Todo{},
		comments: map[int64]*models.Comment{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// users

func (m *memStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) UpdateRole(_ context.Context, id int64, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Role = role
	return nil
}

func (m *memStore) UpdatePassword(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Password = hash
	return nil
}

type todoStore struct{ *memStore }

func (s todoStore) Create(_ context.Context, t *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.id()
	cp := *t
	s.todos[t.ID] = &cp
	return nil
}

func (s todoStore) Get(_ context.Context, id int64) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s todoStore) List(_ context.Context, page, size int) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Todo{}
	for _, t := range s.todos {
		out = append(out, *t)
	}
	start := (page - 1) * size
	if start >= len(out) {
		return []models.Todo{}, nil
	}
	end := start + size
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (s todoStore) Update(_ context.Context, t *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[t.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *t
	s.todos[t.ID] = &cp
	return nil
}

func (s todoStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

type commentStore struct{ *memStore }

func (s commentStore) Create(_ context.Context, c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	cp := *c
	s.comments[c.ID] = &cp
	return nil
}

func (s commentStore) ListByTodo(_ context.Context, todoID int64) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, c := range s.comments {
		if c.TodoID == todoID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s commentStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}
