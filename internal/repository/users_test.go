package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
)

func TestUserCreateAndFind(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	user := &models.User{Email: "asha@example.com", Password: "hash", Name: "Asha", Role: models.RoleUser}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)

	got, err := repo.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Asha", got.Name)

	got, err = repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", got.Email)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	require.NoError(t, repo.Create(context.Background(), &models.User{Email: "asha@example.com", Password: "hash"}))
	err := repo.Create(context.Background(), &models.User{Email: "asha@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserFindMissing(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdateName(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	user := &models.User{Email: "asha@example.com", Password: "hash", Name: "Asha"}
	require.NoError(t, repo.Create(context.Background(), user))

	got, err := repo.UpdateName(context.Background(), user.ID, "Asha K")
	require.NoError(t, err)
	assert.Equal(t, "Asha K", got.Name)

	_, err = repo.UpdateName(context.Background(), "missing-id", "X")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdateAccount(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	user := &models.User{Email: "asha@example.com", Password: "hash", Name: "Asha", Role: models.RoleUser}
	require.NoError(t, repo.Create(context.Background(), user))

	perms := models.Permissions{DashboardAccess: true, PackingAccess: true}
	got, err := repo.UpdateAccount(context.Background(), user.ID, "Asha K", models.RoleAdmin, perms)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.True(t, got.Permissions.PackingAccess)
	assert.False(t, got.Permissions.SyncAccess)

	// The permission flags survive the serializer round trip on a fresh read.
	reread, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, perms, reread.Permissions)
	assert.Equal(t, "Asha K", reread.Name)
}

func TestUserUpdateAccountClearsPermissions(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	user := &models.User{Email: "asha@example.com", Password: "hash", Role: models.RoleAdmin, Permissions: models.AllPermissions()}
	require.NoError(t, repo.Create(context.Background(), user))

	got, err := repo.UpdateAccount(context.Background(), user.ID, "Asha", models.RoleUser, models.Permissions{})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Equal(t, models.Permissions{}, got.Permissions)
}

func TestUserDelete(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	user := &models.User{Email: "asha@example.com", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))

	require.NoError(t, repo.Delete(context.Background(), user.ID))
	_, err := repo.FindByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureDefaultAdminSeedsEmptyTable(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	require.NoError(t, repo.EnsureDefaultAdmin(context.Background(), "admin@example.com", "hash"))

	admin, err := repo.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, models.AllPermissions(), admin.Permissions)

	// A second call on a populated table is a no-op.
	require.NoError(t, repo.EnsureDefaultAdmin(context.Background(), "other@example.com", "hash"))
	_, err = repo.FindByEmail(context.Background(), "other@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureDefaultAdminSkipsNonEmptyTable(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	require.NoError(t, repo.Create(context.Background(), &models.User{Email: "asha@example.com", Password: "hash"}))

	require.NoError(t, repo.EnsureDefaultAdmin(context.Background(), "admin@example.com", "hash"))
	_, err := repo.FindByEmail(context.Background(), "admin@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
