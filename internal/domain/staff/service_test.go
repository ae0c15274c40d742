package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aromapos/internal/core/id"
	"aromapos/internal/domain"
)

type fakeRepo struct {
	members map[id.ID]*Member
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{members: make(map[id.ID]*Member)}
}

func (r *fakeRepo) Create(ctx context.Context, m *Member) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, memberID id.ID) (*Member, error) {
	cp := *r.members[memberID]
	return &cp, nil
}

func (r *fakeRepo) GetByUsername(ctx context.Context, username string) (*Member, error) {
	for _, m := range r.members {
		if m.Username == username {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Update(ctx context.Context, m *Member) error {
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, memberID id.ID) error {
	delete(r.members, memberID)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Member], error) {
	return domain.ListResult[*Member]{}, nil
}

func (r *fakeRepo) CountAdmins(ctx context.Context) (int, error) {
	count := 0
	for _, m := range r.members {
		if m.IsAdmin() && m.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, m := range r.members {
		if m.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCreate_ProfileFields(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{})

	m, err := svc.Create(context.Background(), CreateRequest{
		Username: "cashier1",
		Password: "Counter123!",
		FullName: "Asha Nair",
		Role:     RoleStaff,
		Phone:    "9000000001",
		Email:    "asha@example.com",
		Address:  "12 Market Road",
		Place:    "Kochi",
	})
	require.NoError(t, err)

	assert.Equal(t, "12 Market Road", m.Address)
	assert.Equal(t, "Kochi", m.Place)
	assert.NotEqual(t, "Counter123!", m.PasswordHash)
}

func TestUpdate_ProfileFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{})
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateRequest{
		Username: "cashier2",
		Password: "Counter123!",
		Role:     RoleStaff,
	})
	require.NoError(t, err)

	address := "5 Spice Lane"
	place := "Mattancherry"
	updated, err := svc.Update(ctx, m.ID, UpdateRequest{
		Address: &address,
		Place:   &place,
	})
	require.NoError(t, err)

	assert.Equal(t, address, updated.Address)
	assert.Equal(t, place, updated.Place)

	stored, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, address, stored.Address)
}

func TestCreate_SecondAdminRejected(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Username: "owner", Password: "Counter123!", Role: RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{Username: "owner2", Password: "Counter123!", Role: RoleAdmin})
	assert.Error(t, err)
}
