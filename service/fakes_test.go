package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"virtual-lawyer/models"
	"virtual-lawyer/repository"
	"virtual-lawyer/storage"

	"github.com/google/uuid"
)

type fakeLawStore struct {
	laws    map[string]models.Law
	listErr error
}

func newFakeLawStore(laws ...models.Law) *fakeLawStore {
	f := &fakeLawStore{laws: make(map[string]models.Law)}
	for _, l := range laws {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		f.laws[l.Section] = l
	}
	return f
}

func (f *fakeLawStore) ListAll(ctx context.Context) ([]models.Law, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Law, 0, len(f.laws))
	for _, l := range f.laws {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out, nil
}

func (f *fakeLawStore) GetBySection(ctx context.Context, section string) (*models.Law, error) {
	l, ok := f.laws[section]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

func (f *fakeLawStore) Count(ctx context.Context) (int, error) {
	return len(f.laws), nil
}

func (f *fakeLawStore) Create(ctx context.Context, law *models.Law) error {
	if _, ok := f.laws[law.Section]; ok {
		return repository.ErrDuplicate
	}
	law.ID = uuid.New()
	f.laws[law.Section] = *law
	return nil
}

func (f *fakeLawStore) InsertIgnore(ctx context.Context, law *models.Law) (bool, error) {
	if _, ok := f.laws[law.Section]; ok {
		return false, nil
	}
	return true, f.Create(ctx, law)
}

func (f *fakeLawStore) Update(ctx context.Context, section string, law *models.Law) error {
	old, ok := f.laws[section]
	if !ok {
		return repository.ErrNotFound
	}
	if _, taken := f.laws[law.Section]; taken && law.Section != section {
		return repository.ErrDuplicate
	}
	delete(f.laws, section)
	law.ID = old.ID
	f.laws[law.Section] = *law
	return nil
}

func (f *fakeLawStore) Delete(ctx context.Context, section string) error {
	if _, ok := f.laws[section]; !ok {
		return repository.ErrNotFound
	}
	delete(f.laws, section)
	return nil
}

type fakePenaltyStore struct {
	penalties []models.Penalty
}

func (f *fakePenaltyStore) Create(ctx context.Context, p *models.Penalty) error {
	p.ID = uuid.New()
	f.penalties = append(f.penalties, *p)
	return nil
}

func (f *fakePenaltyStore) Delete(ctx context.Context, section string, id uuid.UUID) error {
	for i, p := range f.penalties {
		if p.ID == id && p.LawSection == section {
			f.penalties = append(f.penalties[:i], f.penalties[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePenaltyStore) ListBySection(ctx context.Context, section string) ([]models.Penalty, error) {
	out := make([]models.Penalty, 0)
	for _, p := range f.penalties {
		if p.LawSection == section {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Upsert(ctx context.Context, user *models.User) error {
	if existing, ok := f.users[user.Username]; ok {
		user.ID = existing.ID
	} else {
		user.ID = uuid.New()
	}
	f.users[user.Username] = *user
	return nil
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]models.Session)}
}

func (f *fakeSessionStore) Create(ctx context.Context, s *models.Session) error {
	f.sessions[s.Token] = *s
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, token uuid.UUID) (*models.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, token uuid.UUID) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for token, s := range f.sessions {
		if s.Expired(now) {
			delete(f.sessions, token)
			n++
		}
	}
	return n, nil
}

type fakeQueryLogStore struct {
	logs      []models.QueryLog
	createErr error
}

func (f *fakeQueryLogStore) Create(ctx context.Context, q *models.QueryLog) error {
	if f.createErr != nil {
		return f.createErr
	}
	q.ID = uuid.New()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	f.logs = append(f.logs, *q)
	return nil
}

func (f *fakeQueryLogStore) ListRecent(ctx context.Context, limit int) ([]models.QueryLog, error) {
	out := make([]models.QueryLog, 0, len(f.logs))
	for i := len(f.logs) - 1; i >= 0; i-- {
		out = append(out, f.logs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeDocumentStore struct {
	docs      []models.Document
	createErr error
}

func (f *fakeDocumentStore) Create(ctx context.Context, doc *models.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeDocumentStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeExtractor struct {
	text string
}

func (f fakeExtractor) Extract(ctx context.Context, data []byte) string {
	return f.text
}

type memoryStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (m *memoryStorage) Upload(ctx context.Context, ns storage.Namespace, id uuid.UUID, filename string, data io.Reader) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	body, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	path := string(ns) + "/" + id.String() + "_" + filename
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = body
	return path, nil
}

func (m *memoryStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.objects[path]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (m *memoryStorage) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, path)
	return nil
}

var errBoom = errors.New("boom")

func seededLaws() []models.Law {
	return []models.Law{
		{Section: "302", Title: "Murder", ShortDescription: "Punishment for murder", Category: "IPC", Keywords: []string{"murder", "kill", "homicide", "assault", "stab"}},
		{Section: "379", Title: "Theft", ShortDescription: "Dishonest taking of movable property", Category: "IPC", Keywords: []string{"theft", "steal"}},
		{Section: "420", Title: "Cheating", ShortDescription: "Cheating and dishonestly inducing delivery of property", Category: "IPC", Keywords: []string{"cheat", "fraud"}},
		{Section: "138", Title: "Dishonour of Cheque", ShortDescription: "Dishonour of cheque offence under Negotiable Instruments Act", Category: "NIA", Keywords: []string{"cheque", "bounce"}},
	}
}
