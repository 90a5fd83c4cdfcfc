package cli

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rcmunich/robert-chang-portfolio/internal/entity"
	"github.com/rcmunich/robert-chang-portfolio/internal/repository"
	"github.com/rcmunich/robert-chang-portfolio/internal/service"
)

type fakeExecer struct {
	statements []string
	err        error
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.statements = append(f.statements, sql)
	return pgconn.CommandTag{}, f.err
}

type memoryContacts struct {
	items []entity.ContactSubmission
}

func (m *memoryContacts) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	m.items = append(m.items, *submission)
	return nil
}

func (m *memoryContacts) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	out := append([]entity.ContactSubmission{}, m.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (m *memoryContacts) UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) (bool, error) {
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].Status != status {
			m.items[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

type memorySingleton[T any] struct {
	value *T
}

func (m *memorySingleton[T]) Get(ctx context.Context) (*T, error) {
	if m.value == nil {
		return nil, repository.ErrNotFound
	}
	return m.value, nil
}

func (m *memorySingleton[T]) Replace(ctx context.Context, value *T) error {
	m.value = value
	return nil
}

type memoryList[T any] struct {
	items []T
}

func (m *memoryList[T]) ListActive(ctx context.Context) ([]T, error) { return m.items, nil }

func (m *memoryList[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return nil, repository.ErrNotFound
}

func (m *memoryList[T]) Create(ctx context.Context, item *T) error {
	m.items = append(m.items, *item)
	return nil
}

func (m *memoryList[T]) Update(ctx context.Context, item *T) error { return repository.ErrNotFound }

func (m *memoryList[T]) Archive(ctx context.Context, id string) (bool, error) { return false, nil }

type fakeStore struct {
	schema       *fakeExecer
	contacts     *memoryContacts
	profile      *memorySingleton[entity.ProfileData]
	expertise    *memorySingleton[entity.Expertise]
	experiences  *memoryList[entity.Experience]
	testimonials *memoryList[entity.Testimonial]
	closed       bool
	lastDSN      string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		schema:       &fakeExecer{},
		contacts:     &memoryContacts{},
		profile:      &memorySingleton[entity.ProfileData]{},
		expertise:    &memorySingleton[entity.Expertise]{},
		experiences:  &memoryList[entity.Experience]{},
		testimonials: &memoryList[entity.Testimonial]{},
	}
}

func (s *fakeStore) open(ctx context.Context, dsn string) (*Backend, error) {
	s.lastDSN = dsn
	if strings.Contains(dsn, "unreachable") {
		return nil, errors.New("dial tcp: connection refused")
	}
	return &Backend{
		Schema:   s.schema,
		Seeder:   service.NewSeeder(s.profile, s.experiences, s.testimonials, s.expertise),
		Contacts: service.NewContactService(s.contacts, nil),
		Close:    func() { s.closed = true },
	}, nil
}
