package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/internal/domain/skill"
	"portfolio/internal/infrastructure/storage"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("store down")

type fakeProjectRepo struct {
	items   map[uuid.UUID]project.Project
	err     error
	calls   int
	writes  int
	clock   time.Time
	lastArg project.Project
}

func newFakeProjectRepo(items ...project.Project) *fakeProjectRepo {
	r := &fakeProjectRepo{items: map[uuid.UUID]project.Project{}, clock: time.Unix(1700000000, 0)}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeProjectRepo) sorted(keep func(project.Project) bool) []project.Project {
	out := make([]project.Project, 0)
	for _, p := range r.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeProjectRepo) ListVisible(context.Context) ([]project.Project, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(p project.Project) bool { return p.IsVisible }), nil
}

func (r *fakeProjectRepo) GetVisibleByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	r.calls++
	if r.err != nil {
		return project.Project{}, r.err
	}
	p, ok := r.items[id]
	if !ok || !p.IsVisible {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]project.Project, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(p project.Project) bool { return p.UserID == userID }), nil
}

func (r *fakeProjectRepo) GetByIDForUser(_ context.Context, id, userID uuid.UUID) (project.Project, error) {
	r.calls++
	if r.err != nil {
		return project.Project{}, r.err
	}
	p, ok := r.items[id]
	if !ok || p.UserID != userID {
		return project.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) CountByUser(_ context.Context, userID uuid.UUID) (int, int, error) {
	r.calls++
	if r.err != nil {
		return 0, 0, r.err
	}
	total, visible := 0, 0
	for _, p := range r.items {
		if p.UserID != userID {
			continue
		}
		total++
		if p.IsVisible {
			visible++
		}
	}
	return total, visible, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, p project.Project) (project.Project, error) {
	r.calls++
	r.writes++
	r.lastArg = p
	if r.err != nil {
		return project.Project{}, r.err
	}
	p.ID = uuid.New()
	r.clock = r.clock.Add(time.Second)
	p.CreatedAt = r.clock
	p.UpdatedAt = r.clock
	r.items[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p project.Project) (project.Project, error) {
	r.calls++
	r.writes++
	r.lastArg = p
	if r.err != nil {
		return project.Project{}, r.err
	}
	cur, ok := r.items[p.ID]
	if !ok || cur.UserID != p.UserID {
		return project.Project{}, project.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	r.items[p.ID] = p
	return p, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.calls++
	r.writes++
	if r.err != nil {
		return r.err
	}
	p, ok := r.items[id]
	if !ok || p.UserID != userID {
		return project.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeProjectRepo) ToggleVisibility(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.calls++
	r.writes++
	if r.err != nil {
		return false, r.err
	}
	p, ok := r.items[id]
	if !ok || p.UserID != userID {
		return false, project.ErrNotFound
	}
	p.IsVisible = !p.IsVisible
	r.items[id] = p
	return p.IsVisible, nil
}

type fakeSkillRepo struct {
	items  map[uuid.UUID]skill.Skill
	err    error
	calls  int
	writes int
}

func newFakeSkillRepo(items ...skill.Skill) *fakeSkillRepo {
	r := &fakeSkillRepo{items: map[uuid.UUID]skill.Skill{}}
	for _, s := range items {
		r.items[s.ID] = s
	}
	return r
}

func (r *fakeSkillRepo) sorted(keep func(skill.Skill) bool) []skill.Skill {
	out := make([]skill.Skill, 0)
	for _, s := range r.items {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

func (r *fakeSkillRepo) ListVisible(context.Context) ([]skill.Skill, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(s skill.Skill) bool { return s.IsVisible }), nil
}

func (r *fakeSkillRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(s skill.Skill) bool { return s.UserID == userID }), nil
}

func (r *fakeSkillRepo) GetByIDForUser(_ context.Context, id, userID uuid.UUID) (skill.Skill, error) {
	r.calls++
	if r.err != nil {
		return skill.Skill{}, r.err
	}
	s, ok := r.items[id]
	if !ok || s.UserID != userID {
		return skill.Skill{}, skill.ErrNotFound
	}
	return s, nil
}

func (r *fakeSkillRepo) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, s := range r.items {
		if s.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSkillRepo) NextSortOrder(_ context.Context, userID uuid.UUID, category skill.Category) (int, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	next := 0
	for _, s := range r.items {
		if s.UserID == userID && s.Category == category && s.SortOrder >= next {
			next = s.SortOrder + 1
		}
	}
	return next, nil
}

func (r *fakeSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	r.calls++
	r.writes++
	if r.err != nil {
		return skill.Skill{}, r.err
	}
	s.ID = uuid.New()
	r.items[s.ID] = s
	return s, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, s skill.Skill) (skill.Skill, error) {
	r.calls++
	r.writes++
	if r.err != nil {
		return skill.Skill{}, r.err
	}
	cur, ok := r.items[s.ID]
	if !ok || cur.UserID != s.UserID {
		return skill.Skill{}, skill.ErrNotFound
	}
	r.items[s.ID] = s
	return s, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.calls++
	r.writes++
	if r.err != nil {
		return r.err
	}
	s, ok := r.items[id]
	if !ok || s.UserID != userID {
		return skill.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeSkillRepo) ToggleVisibility(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.calls++
	r.writes++
	if r.err != nil {
		return false, r.err
	}
	s, ok := r.items[id]
	if !ok || s.UserID != userID {
		return false, skill.ErrNotFound
	}
	s.IsVisible = !s.IsVisible
	r.items[id] = s
	return s.IsVisible, nil
}

type fakeProfileRepo struct {
	items  map[uuid.UUID]profile.Profile
	err    error
	calls  int
	writes int
}

func newFakeProfileRepo(items ...profile.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{items: map[uuid.UUID]profile.Profile{}}
	for _, p := range items {
		r.items[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepo) GetFirst(context.Context) (profile.Profile, error) {
	r.calls++
	if r.err != nil {
		return profile.Profile{}, r.err
	}
	for _, p := range r.items {
		return p, nil
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	r.calls++
	if r.err != nil {
		return profile.Profile{}, r.err
	}
	p, ok := r.items[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p profile.Profile) (profile.Profile, error) {
	r.calls++
	r.writes++
	if r.err != nil {
		return profile.Profile{}, r.err
	}
	if cur, ok := r.items[p.UserID]; ok {
		p.ID = cur.ID
	} else {
		p.ID = uuid.New()
	}
	r.items[p.UserID] = p
	return p, nil
}

type memStore struct {
	mu      sync.Mutex
	objects map[string]string
	delay   map[string]time.Duration
	failOn  string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string]string{}, delay: map[string]time.Duration{}}
}

func (s *memStore) Put(ctx context.Context, bucket storage.Bucket, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if d, ok := s.delay[string(b)]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.failOn != "" && string(b) == s.failOn {
		return errStoreDown
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[string(bucket)+"/"+key] = string(b)
	return nil
}

func (s *memStore) PublicURL(bucket storage.Bucket, key string) string {
	return "https://cdn.test/" + string(bucket) + "/" + key
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) ContentUpdated(entity, action string, _ uuid.UUID) {
	n.events = append(n.events, entity+":"+action)
}

func textFile(name, contentType, body string) FileInput {
	return FileInput{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}
