// internal/service/user_test.go
package service_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/argon2"

	"github.com/nexasuite/platform/internal/auth"
	"github.com/nexasuite/platform/internal/domain"
	"github.com/nexasuite/platform/internal/mocks"
	"github.com/nexasuite/platform/internal/model"
	"github.com/nexasuite/platform/internal/service"
)

// legacyDigest builds an argon2id hash with a deliberately small memory cost,
// standing in for credentials hashed before the parameters were raised.
func legacyDigest(password string) string {
	salt := []byte("0123456789abcdef")
	hash := argon2.IDKey([]byte(password), salt, 1, 16*1024, 4, 32)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, 16*1024, 1, 4,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasher()

	newUser := func(passwordHash string) *model.User {
		return &model.User{
			ID:             uuid.New(),
			OrganizationID: uuid.New(),
			Email:          "dana@nexasuite.test",
			PasswordHash:   passwordHash,
			IsActive:       true,
		}
	}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(users, hasher, nil)

		stored, err := hasher.Hash("correct-horse")
		require.NoError(t, err)
		account := newUser(stored)
		users.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		got, err := svc.Authenticate(ctx, account.Email, "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(users, hasher, nil)

		stored, err := hasher.Hash("correct-horse")
		require.NoError(t, err)
		account := newUser(stored)
		users.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		_, err = svc.Authenticate(ctx, account.Email, "battery-staple")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("inactive account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(users, hasher, nil)

		account := newUser("irrelevant")
		account.IsActive = false
		users.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		_, err := svc.Authenticate(ctx, account.Email, "correct-horse")
		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})

	t.Run("legacy digest is upgraded on login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(users, hasher, nil)

		legacy := legacyDigest("correct-horse")
		account := newUser(legacy)
		users.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		var upgraded string
		users.EXPECT().Update(gomock.Any(), account).DoAndReturn(
			func(_ context.Context, u *model.User) error {
				upgraded = u.PasswordHash
				return nil
			})

		_, err := svc.Authenticate(ctx, account.Email, "correct-horse")
		require.NoError(t, err)

		require.NotEmpty(t, upgraded)
		assert.NotEqual(t, legacy, upgraded)
		ok, err := hasher.Verify("correct-horse", upgraded)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.False(t, hasher.NeedsRehash(upgraded))
	})
}
