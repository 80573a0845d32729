package application

import (
	"context"
	"sort"
	"time"

	"github.com/devsenior/property-service/internal/domain/entity"
	"github.com/devsenior/property-service/internal/domain/repository"
)

// In-memory repository fakes used by the service tests. failWith, when set,
// is returned by every call to simulate an unavailable store.

type memPropertyRepo struct {
	items          map[int64]entity.Property
	nextID         int64
	failWith       error
	failUpdateWith error
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{items: map[int64]entity.Property{}}
}

func (r *memPropertyRepo) Create(_ context.Context, p *entity.Property) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	p.ID = r.nextID
	r.items[p.ID] = *p
	return nil
}

func (r *memPropertyRepo) GetByID(_ context.Context, id int64) (*entity.Property, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memPropertyRepo) GetAll(_ context.Context) ([]entity.Property, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]entity.Property, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPropertyRepo) GetByCity(_ context.Context, city string) ([]entity.Property, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]entity.Property, 0)
	for _, p := range r.items {
		if p.City == city {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPropertyRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.items[id]
	return ok, nil
}

func (r *memPropertyRepo) Update(_ context.Context, p *entity.Property) error {
	if r.failWith != nil {
		return r.failWith
	}
	if r.failUpdateWith != nil {
		return r.failUpdateWith
	}
	if _, ok := r.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *memPropertyRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

var _ repository.PropertyRepository = (*memPropertyRepo)(nil)

type memUserRepo struct {
	items    map[int64]entity.User
	nextID   int64
	failWith error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: map[int64]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.items[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.items {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	for _, u := range r.items {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)
