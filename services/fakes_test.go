package services_test

import (
	"context"
	"errors"

	"github.com/user/inventory_api/internal/models"
	"github.com/user/inventory_api/repository"
)

var errStorage = errors.New("connection refused")

// fakeRoleRepository keeps roles in a map and counts every call so tests can
// assert that storage was never reached.
type fakeRoleRepository struct {
	roles  map[int]models.Role
	nextID int
	calls  int
	err    error
}

var _ repository.RoleRepository = (*fakeRoleRepository)(nil)

func newFakeRoleRepository(roles ...models.Role) *fakeRoleRepository {
	f := &fakeRoleRepository{roles: map[int]models.Role{}, nextID: 1}
	for _, r := range roles {
		f.roles[r.ID] = r
		if r.ID >= f.nextID {
			f.nextID = r.ID + 1
		}
	}
	return f
}

func (f *fakeRoleRepository) GetAll(ctx context.Context) ([]models.Role, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	roles := make([]models.Role, 0, len(f.roles))
	for id := 1; id < f.nextID; id++ {
		if r, ok := f.roles[id]; ok {
			roles = append(roles, r)
		}
	}
	return roles, nil
}

func (f *fakeRoleRepository) GetByID(ctx context.Context, id int) (*models.Role, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.roles[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRoleRepository) Find(ctx context.Context, query any, args ...any) ([]models.Role, error) {
	f.calls++
	return nil, errors.New("not supported")
}

func (f *fakeRoleRepository) Add(ctx context.Context, role *models.Role) (*models.Role, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	role.ID = f.nextID
	f.nextID++
	f.roles[role.ID] = *role
	return role, nil
}

func (f *fakeRoleRepository) Update(ctx context.Context, role *models.Role) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.roles[role.ID]; !ok {
		return false, nil
	}
	f.roles[role.ID] = *role
	return true, nil
}

func (f *fakeRoleRepository) Delete(ctx context.Context, id int) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.roles[id]; !ok {
		return false, nil
	}
	delete(f.roles, id)
	return true, nil
}

func (f *fakeRoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.roles {
		if r.Name == name {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	r, ok := f.roles[id]
	if !ok {
		return false, nil
	}
	r.Status = false
	f.roles[id] = r
	return true, nil
}

func strPtr(s string) *string {
	return &s
}
