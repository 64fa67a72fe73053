package user

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/media"
)

func errKind(t *testing.T, err error) common.ErrorKind {
	t.Helper()
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	return apiErr.Kind
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	mockDelegate := media.NewMockDelegate(ctrl)
	svc := NewUserService(mockRepo, mockDelegate)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    RegisterInput
		setup    func()
		wantErr  bool
		wantKind common.ErrorKind
	}{
		{
			name: "success with avatar only",
			input: RegisterInput{
				Username: "alice", Email: "alice@example.com",
				FullName: "Alice A", Password: "Password123",
				AvatarPath: "/tmp/avatar.png",
			},
			setup: func() {
				mockRepo.EXPECT().CheckUserExists(ctx, "alice", "alice@example.com").Return(false, nil)
				mockDelegate.EXPECT().Store(ctx, "/tmp/avatar.png", gomock.Any()).
					Return(&media.Asset{URL: "http://cdn/avatar-temp", PublicID: "avatar-temp-1"}, nil)
				mockDelegate.EXPECT().Rename(ctx, "avatar-temp-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, toID string) (*media.Asset, error) {
						return &media.Asset{URL: "http://cdn/" + toID, PublicID: toID}, nil
					})
				mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmongo.User) error {
						u.ID = primitive.NewObjectID()
						return nil
					})
			},
		},
		{
			name: "missing avatar",
			input: RegisterInput{
				Username: "bob", Email: "bob@example.com",
				FullName: "Bob B", Password: "Password123",
			},
			setup:    func() {},
			wantErr:  true,
			wantKind: common.KindInvalidInput,
		},
		{
			name: "duplicate username or email",
			input: RegisterInput{
				Username: "carol", Email: "carol@example.com",
				FullName: "Carol C", Password: "Password123",
				AvatarPath: "/tmp/avatar.png",
			},
			setup: func() {
				mockRepo.EXPECT().CheckUserExists(ctx, "carol", "carol@example.com").Return(true, nil)
			},
			wantErr:  true,
			wantKind: common.KindInvalidOperation,
		},
		{
			name: "avatar upload fails",
			input: RegisterInput{
				Username: "dave", Email: "dave@example.com",
				FullName: "Dave D", Password: "Password123",
				AvatarPath: "/tmp/avatar.png",
			},
			setup: func() {
				mockRepo.EXPECT().CheckUserExists(ctx, "dave", "dave@example.com").Return(false, nil)
				mockDelegate.EXPECT().Store(ctx, "/tmp/avatar.png", gomock.Any()).
					Return(nil, errors.New("delegate is down"))
			},
			wantErr:  true,
			wantKind: common.KindUploadFailed,
		},
		{
			name: "rename promotion fails",
			input: RegisterInput{
				Username: "erin", Email: "erin@example.com",
				FullName: "Erin E", Password: "Password123",
				AvatarPath: "/tmp/avatar.png",
			},
			setup: func() {
				mockRepo.EXPECT().CheckUserExists(ctx, "erin", "erin@example.com").Return(false, nil)
				mockDelegate.EXPECT().Store(ctx, "/tmp/avatar.png", gomock.Any()).
					Return(&media.Asset{URL: "u", PublicID: "avatar-temp-2"}, nil)
				mockDelegate.EXPECT().Rename(ctx, "avatar-temp-2", gomock.Any()).
					Return(nil, errors.New("rename refused"))
			},
			wantErr:  true,
			wantKind: common.KindUploadFailed,
		},
		{
			name: "invalid username",
			input: RegisterInput{
				Username: "!", Email: "x@y.com",
				FullName: "X", Password: "Password123",
				AvatarPath: "/tmp/avatar.png",
			},
			setup:    func() {},
			wantErr:  true,
			wantKind: common.KindInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			user, err := svc.Register(ctx, tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.Equal(t, tc.wantKind, errKind(t, err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			require.False(t, user.ID.IsZero())
			require.NotEmpty(t, user.Avatar.PublicID)
			require.NotEqual(t, "avatar-temp-1", user.Avatar.PublicID)
			require.NotEmpty(t, user.PasswordHash, "password hash must be set")
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	mockDelegate := media.NewMockDelegate(ctrl)
	svc := NewUserService(mockRepo, mockDelegate)
	ctx := context.Background()

	hash, err := common.HashPassword("Password123")
	require.NoError(t, err)
	stored := &dbmongo.User{
		ID:           primitive.NewObjectID(),
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice A",
		PasswordHash: hash,
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByLogin(ctx, "alice").Return(stored, nil)
		mockRepo.EXPECT().UpdateRefreshToken(ctx, stored.ID, gomock.Any()).Return(nil)

		user, tokens, err := svc.Login(ctx, "alice", "Password123")
		require.NoError(t, err)
		require.Equal(t, stored.ID, user.ID)
		require.NotEmpty(t, tokens.AccessToken)
		require.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByLogin(ctx, "alice").Return(stored, nil)

		_, _, err := svc.Login(ctx, "alice", "nope")
		require.Error(t, err)
		require.Equal(t, common.KindUnauthorized, errKind(t, err))
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByLogin(ctx, "ghost").
			Return(nil, common.NewApiError(common.KindNotFound, "user not found"))

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		require.Error(t, err)
		require.Equal(t, common.KindNotFound, errKind(t, err))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "")
		require.Error(t, err)
		require.Equal(t, common.KindInvalidInput, errKind(t, err))
	})
}

func TestUserService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	mockDelegate := media.NewMockDelegate(ctrl)
	svc := NewUserService(mockRepo, mockDelegate)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	token, err := common.GenerateRefreshToken(userID.Hex())
	require.NoError(t, err)

	t.Run("rotates both tokens", func(t *testing.T) {
		stored := &dbmongo.User{ID: userID, Username: "alice", RefreshTokenHash: hashToken(token)}
		mockRepo.EXPECT().GetUserByID(ctx, userID).Return(stored, nil)
		mockRepo.EXPECT().UpdateRefreshToken(ctx, userID, gomock.Any()).Return(nil)

		pair, err := svc.Refresh(ctx, token)
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEqual(t, token, pair.RefreshToken)
	})

	t.Run("stale token rejected", func(t *testing.T) {
		stored := &dbmongo.User{ID: userID, Username: "alice", RefreshTokenHash: "some-other-hash"}
		mockRepo.EXPECT().GetUserByID(ctx, userID).Return(stored, nil)

		_, err := svc.Refresh(ctx, token)
		require.Error(t, err)
		require.Equal(t, common.KindUnauthorized, errKind(t, err))
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-jwt")
		require.Error(t, err)
		require.Equal(t, common.KindUnauthorized, errKind(t, err))
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	mockDelegate := media.NewMockDelegate(ctrl)
	svc := NewUserService(mockRepo, mockDelegate)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	hash, err := common.HashPassword("OldPass123")
	require.NoError(t, err)
	stored := &dbmongo.User{ID: userID, PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(ctx, userID).Return(stored, nil)
		mockRepo.EXPECT().UpdateProfile(ctx, userID, gomock.Any()).Return(stored, nil)

		require.NoError(t, svc.ChangePassword(ctx, userID, "OldPass123", "NewPass456"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(ctx, userID).Return(stored, nil)

		err := svc.ChangePassword(ctx, userID, "wrong", "NewPass456")
		require.Error(t, err)
		require.Equal(t, common.KindUnauthorized, errKind(t, err))
	})

	t.Run("weak new password", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(ctx, userID).Return(stored, nil)

		err := svc.ChangePassword(ctx, userID, "OldPass123", "ab")
		require.Error(t, err)
		require.Equal(t, common.KindInvalidInput, errKind(t, err))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	mockDelegate := media.NewMockDelegate(ctrl)
	svc := NewUserService(mockRepo, mockDelegate)
	ctx := context.Background()

	userID := primitive.NewObjectID()

	t.Run("nothing to update", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, userID, "", "   ")
		require.Error(t, err)
		require.Equal(t, common.KindInvalidInput, errKind(t, err))
	})

	t.Run("only supplied fields are written", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateProfile(ctx, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, set map[string]interface{}) (*dbmongo.User, error) {
				require.Contains(t, set, "fullName")
				require.NotContains(t, set, "email")
				return &dbmongo.User{ID: userID, FullName: "New Name"}, nil
			})

		user, err := svc.UpdateProfile(ctx, userID, "New Name", "")
		require.NoError(t, err)
		require.Equal(t, "New Name", user.FullName)
	})

	t.Run("bad email rejected", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, userID, "", "not-an-email")
		require.Error(t, err)
		require.Equal(t, common.KindInvalidInput, errKind(t, err))
	})
}

func TestUserService_UpdateAvatar_OverwritesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockUserRepository(ctrl)
	mockDelegate := media.NewMockDelegate(ctrl)
	svc := NewUserService(mockRepo, mockDelegate)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	stored := &dbmongo.User{
		ID:     userID,
		Avatar: dbmongo.MediaRef{URL: "http://cdn/old", PublicID: "avatar-abc"},
	}

	mockRepo.EXPECT().GetUserByID(ctx, userID).Return(stored, nil)
	// same public id goes back to the delegate, so the old object is replaced
	mockDelegate.EXPECT().Store(ctx, "/tmp/new.png", "avatar-abc").
		Return(&media.Asset{URL: "http://cdn/new", PublicID: "avatar-abc"}, nil)
	mockRepo.EXPECT().UpdateProfile(ctx, userID, gomock.Any()).
		Return(&dbmongo.User{ID: userID, Avatar: dbmongo.MediaRef{URL: "http://cdn/new", PublicID: "avatar-abc"}}, nil)

	user, err := svc.UpdateAvatar(ctx, userID, "/tmp/new.png")
	require.NoError(t, err)
	require.Equal(t, "avatar-abc", user.Avatar.PublicID)
	require.Equal(t, "http://cdn/new", user.Avatar.URL)
}
