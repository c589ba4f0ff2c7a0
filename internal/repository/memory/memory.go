// Package memory menyediakan implementasi repository di memori dengan unique constraint
// yang sama seperti skema SQL. Dipakai untuk test dan DB_DRIVER=memory.
package memory

import (
	"sort"
	"sync"
	"time"

	"e-presensi-backend/internal/model"
	"e-presensi-backend/internal/repository"
)

type attendanceKey struct {
	userID string
	date   string
}

type Store struct {
	mu     sync.Mutex
	nextID uint
	now    func() time.Time

	users      map[string]model.User
	profiles   map[string]model.Profile
	roles      map[string]model.UserRole
	attendance map[attendanceKey]model.AttendanceRecord
	tokens     map[string]model.RevokedToken
}

func NewStore() *Store {
	return &Store{
		now:        time.Now,
		users:      map[string]model.User{},
		profiles:   map[string]model.Profile{},
		roles:      map[string]model.UserRole{},
		attendance: map[attendanceKey]model.AttendanceRecord{},
		tokens:     map[string]model.RevokedToken{},
	}
}

// NewRepositories membuat store baru dan membungkusnya sebagai repository.Repositories.
func NewRepositories() repository.Repositories {
	return NewStore().Repositories()
}

func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Users:      &userRepo{s},
		Profiles:   &profileRepo{s},
		Roles:      &roleRepo{s},
		Attendance: &attendanceRepo{s},
		Tokens:     &tokenRepo{s},
		Dashboard:  &dashboardRepo{s},
		System:     &systemRepo{s},
	}
}

// SetClock mengganti sumber waktu untuk created_at / updated_at.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type userRepo struct{ s *Store }

func (r *userRepo) GetByID(id string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) CreateWithProfile(user *model.User, profile *model.Profile, role *model.UserRole) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Semua constraint dicek dulu, baru ditulis, agar tidak ada penulisan sebagian.
	if _, exists := r.s.users[user.ID]; exists {
		return repository.ErrDuplicate
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if _, exists := r.s.profiles[user.ID]; exists {
		return repository.ErrDuplicate
	}
	if _, exists := r.s.roles[user.ID]; exists {
		return repository.ErrDuplicate
	}

	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user

	profile.UserID = user.ID
	profile.ID = r.s.id()
	profile.CreatedAt, profile.UpdatedAt = now, now
	r.s.profiles[user.ID] = *profile

	role.UserID = user.ID
	role.ID = r.s.id()
	role.CreatedAt, role.UpdatedAt = now, now
	r.s.roles[user.ID] = *role
	return nil
}

func (r *userRepo) UpdatePassword(id, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	u.UpdatedAt = r.s.now()
	r.s.users[id] = u
	return nil
}

type profileRepo struct{ s *Store }

func (r *profileRepo) GetByUserID(userID string) (*model.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *profileRepo) GetAll() ([]model.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]model.Profile, 0, len(r.s.profiles))
	for _, p := range r.s.profiles {
		list = append(list, p)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].FullName == list[j].FullName {
			return list[i].UserID < list[j].UserID
		}
		return list[i].FullName < list[j].FullName
	})
	return list, nil
}

func (r *profileRepo) ListUserIDs() ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedKeys(r.s.profiles), nil
}

func (r *profileRepo) Create(profile *model.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.profiles[profile.UserID]; exists {
		return repository.ErrDuplicate
	}
	r.insertProfile(profile)
	return nil
}

func (r *profileRepo) CreateIfMissing(profile *model.Profile) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.profiles[profile.UserID]; exists {
		return false, nil
	}
	r.insertProfile(profile)
	return true, nil
}

func (r *profileRepo) insertProfile(profile *model.Profile) {
	now := r.s.now()
	profile.ID = r.s.id()
	profile.CreatedAt, profile.UpdatedAt = now, now
	r.s.profiles[profile.UserID] = *profile
}

func (r *profileRepo) Update(profile *model.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.profiles[profile.UserID]; !ok {
		return repository.ErrNotFound
	}
	profile.UpdatedAt = r.s.now()
	r.s.profiles[profile.UserID] = *profile
	return nil
}

func (r *profileRepo) CountIncomplete() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.profiles {
		if p.IsIncomplete() {
			n++
		}
	}
	return n, nil
}

type roleRepo struct{ s *Store }

func (r *roleRepo) GetByUserID(userID string) (*model.UserRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.roles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &role, nil
}

func (r *roleRepo) GetAll() ([]model.UserRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]model.UserRole, 0, len(r.s.roles))
	for _, k := range sortedKeys(r.s.roles) {
		list = append(list, r.s.roles[k])
	}
	return list, nil
}

func (r *roleRepo) ListUserIDs() ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedKeys(r.s.roles), nil
}

func (r *roleRepo) ListUserIDsByRole(role string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []string
	for _, k := range sortedKeys(r.s.roles) {
		if r.s.roles[k].Role == role {
			ids = append(ids, k)
		}
	}
	return ids, nil
}

func (r *roleRepo) CreateIfMissing(role *model.UserRole) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.roles[role.UserID]; exists {
		return false, nil
	}
	now := r.s.now()
	role.ID = r.s.id()
	role.CreatedAt, role.UpdatedAt = now, now
	r.s.roles[role.UserID] = *role
	return true, nil
}

func (r *roleRepo) Upsert(userID, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	row, exists := r.s.roles[userID]
	if !exists {
		row = model.UserRole{UserID: userID}
		row.ID = r.s.id()
		row.CreatedAt = now
	}
	row.Role = role
	row.UpdatedAt = now
	r.s.roles[userID] = row
	return nil
}
