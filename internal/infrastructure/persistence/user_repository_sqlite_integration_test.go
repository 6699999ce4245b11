//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/BillBrieferServer/scribe/internal/domain/users"
	"github.com/BillBrieferServer/scribe/internal/infrastructure/persistence/models"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "doc@example.com")

	err := ctx.UserRepo.Create(context.Background(), user)
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	// Verify using GORM model (infrastructure concern)
	var createdUserModel models.UserModel
	err = ctx.DB.First(&createdUserModel, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, user.Email, createdUserModel.Email)
	assert.False(t, createdUserModel.EmailVerified)
}

func TestUserSqliteRepository_Create_InvalidUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := &users.User{} // Invalid - missing required fields

	err := ctx.UserRepo.Create(context.Background(), user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestUser(t, "doc@example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), first))

	second := CreateTestUser(t, "doc@example.com")
	err := ctx.UserRepo.Create(context.Background(), second)
	assert.Error(t, err)
}

func TestUserSqliteRepository_GetByEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "doc@example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByEmail(context.Background(), "doc@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, "Test User", fetched.Name)
}

func TestUserSqliteRepository_GetByEmail_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_UpdateByID_ClearsCodeFields(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "doc@example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	user.EmailVerified = true
	user.VerificationCodeHash = ""
	user.VerificationExpires = nil
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, fetched.EmailVerified)
	assert.Empty(t, fetched.VerificationCodeHash)
	assert.Nil(t, fetched.VerificationExpires)
}

func TestUserSqliteRepository_List_FilterByVerified(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	verified := CreateTestUser(t, "verified@example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), verified))
	verified.EmailVerified = true
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), verified))

	pending := CreateTestUser(t, "pending@example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), pending))

	query := users.NewUserQuery()
	isVerified := true
	query.Verified = &isVerified

	userList, err := ctx.UserRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, userList, 1)
	assert.Equal(t, "verified@example.com", userList[0].Email)
}

func TestUserSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "doc@example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), user.ID))

	_, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_DeleteByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.UserRepo.DeleteByID(context.Background(), 999)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_ClearExpiredCodes(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	expired := CreateTestUser(t, "expired@example.com")
	past := time.Now().UTC().Add(-time.Hour)
	expired.VerificationExpires = &past
	require.NoError(t, ctx.UserRepo.Create(context.Background(), expired))

	current := CreateTestUser(t, "current@example.com")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), current))

	affected, err := ctx.UserRepo.ClearExpiredCodes(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	fetched, err := ctx.UserRepo.GetByID(context.Background(), expired.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.VerificationCodeHash)
	assert.Nil(t, fetched.VerificationExpires)

	untouched, err := ctx.UserRepo.GetByID(context.Background(), current.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, untouched.VerificationCodeHash)
}
