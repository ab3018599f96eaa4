package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/mq"
)

var errBackendDown = errors.New("connection refused")

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filesmanager_test",
		Name:      "general_counters",
	}, []string{"result"})
}

// FakeFileRepository keeps records in insertion order.
type FakeFileRepository struct {
	mu      sync.Mutex
	files   file.Files
	err     error
	inserts int
}

func (r *FakeFileRepository) CreateFile(_ context.Context, req *file.File) (*file.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	cp := *req
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	r.files = append(r.files, &cp)
	r.inserts++
	out := cp
	return &out, nil
}

func (r *FakeFileRepository) FetchFileByID(_ context.Context, id file.ID) (*file.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, f := range r.files {
		if f.ID == id {
			out := *f
			return &out, nil
		}
	}
	return nil, nil
}

func (r *FakeFileRepository) FetchFiles(_ context.Context, userID user.ID, parentID file.ParentID, skip, limit int) (file.Files, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("OFFSET must not be negative: %d", skip)
	}
	var matched file.Files
	for _, f := range r.files {
		if f.UserID == userID && f.ParentID.Key() == parentID.Key() {
			matched = append(matched, f)
		}
	}
	if skip >= len(matched) {
		return file.Files{}, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (r *FakeFileRepository) CountFiles(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.files)), nil
}

func (r *FakeFileRepository) add(f *file.File) *file.File {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.files = append(r.files, f)
	return f
}

type FakeContentStore struct {
	saved   map[string][]byte
	err     error
	calls   int
	removed []string
}

func (s *FakeContentStore) Save(_ context.Context, data []byte) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	path := "/tmp/files_manager/" + uuid.NewString()
	s.saved[path] = data
	return path, nil
}

func (s *FakeContentStore) Remove(_ context.Context, location string) error {
	s.removed = append(s.removed, location)
	delete(s.saved, location)
	return nil
}

type FakeUserRepository struct {
	users map[user.ID]*user.User
	err   error
	// createErr overrides err for CreateUser only
	createErr error
}

func newFakeUserRepository(us ...*user.User) *FakeUserRepository {
	r := &FakeUserRepository{users: make(map[user.ID]*user.User)}
	for _, u := range us {
		r.users[u.ID] = u
	}
	return r
}

func (r *FakeUserRepository) FetchUserByID(_ context.Context, id user.ID) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func (r *FakeUserRepository) FetchUserByEmail(_ context.Context, email string) (*user.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *FakeUserRepository) CreateUser(_ context.Context, req user.User) (*user.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.err != nil {
		return nil, r.err
	}
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	r.users[req.ID] = &req
	return &req, nil
}

func (r *FakeUserRepository) CountUsers(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.users)), nil
}

type fakeEntry struct {
	value string
	ttl   time.Duration
}

type FakeSessionCache struct {
	entries map[string]fakeEntry
	err     error
}

func newFakeSessionCache() *FakeSessionCache {
	return &FakeSessionCache{entries: make(map[string]fakeEntry)}
}

func (c *FakeSessionCache) Get(_ context.Context, key string) (string, bool, error) {
	if c.err != nil {
		return "", false, c.err
	}
	e, ok := c.entries[key]
	return e.value, ok, nil
}

func (c *FakeSessionCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.entries[key] = fakeEntry{value: value, ttl: ttl}
	return nil
}

func (c *FakeSessionCache) Del(_ context.Context, key string) error {
	if c.err != nil {
		return c.err
	}
	delete(c.entries, key)
	return nil
}

func (c *FakeSessionCache) Ping(_ context.Context) error { return c.err }

type FakeRabbitMQ struct {
	in chan mq.Event
}

func (f *FakeRabbitMQ) Connect(context.Context, string) error { return nil }
func (f *FakeRabbitMQ) Init() error                           { return nil }
func (f *FakeRabbitMQ) PublisherWorker(context.Context)       {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event           { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection          { return nil }
