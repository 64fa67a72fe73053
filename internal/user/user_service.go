package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
	"vidtube/internal/media"
)

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string

	// locally staged upload paths, avatar is required
	AvatarPath string
	CoverPath  string
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*dbmongo.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*dbmongo.User, *TokenPair, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error

	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, fullName, email string) (*dbmongo.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, localPath string) (*dbmongo.User, error)
	UpdateCover(ctx context.Context, userID primitive.ObjectID, localPath string) (*dbmongo.User, error)

	WatchHistory(ctx context.Context, userID primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error)
	ChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (*dbmongo.ChannelProfile, error)
}

type userService struct {
	userRepo UserRepository
	delegate media.Delegate
}

func NewUserService(userRepo UserRepository, delegate media.Delegate) UserService {
	return &userService{userRepo: userRepo, delegate: delegate}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*dbmongo.User, error) {
	// stage 1: shape validation
	if err := common.RequireFields(map[string]string{
		"username": input.Username,
		"email":    input.Email,
		"fullName": input.FullName,
		"password": input.Password,
	}); err != nil {
		return nil, err
	}
	if err := common.ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := common.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := common.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if input.AvatarPath == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "avatar is required")
	}

	exists, err := s.userRepo.CheckUserExists(ctx, input.Username, input.Email)
	if err != nil {
		return nil, common.WrapInternal("failed to check existing users", err)
	}
	if exists {
		return nil, common.NewApiError(common.KindInvalidOperation, "username or email already taken")
	}

	// stage 2: password hashing, only ever runs on a fresh or changed password
	passwordHash, err := hashPasswordStage(input.Password)
	if err != nil {
		return nil, common.WrapInternal("failed to hash password", err)
	}

	// stage 3: media upload + temp->permanent promotion
	avatar, err := s.promoteMediaStage(ctx, input.AvatarPath, "avatar")
	if err != nil {
		return nil, err
	}
	var cover dbmongo.MediaRef
	if input.CoverPath != "" {
		coverRef, err := s.promoteMediaStage(ctx, input.CoverPath, "cover")
		if err != nil {
			return nil, err
		}
		cover = *coverRef
	}

	// stage 4: persist
	user := &dbmongo.User{
		Username:     common.NormalizeUsername(input.Username),
		Email:        common.NormalizeEmail(input.Email),
		FullName:     strings.TrimSpace(input.FullName),
		Avatar:       *avatar,
		CoverImage:   cover,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if apiErr, ok := common.AsApiError(err); ok && apiErr.Kind != common.KindInternal {
			return nil, apiErr
		}
		return nil, common.WrapInternal("something went wrong while registering the user", err)
	}
	return user, nil
}

// hashPasswordStage is the explicit pre-persist hook for password writes.
func hashPasswordStage(password string) (string, error) {
	return common.HashPassword(password)
}

// promoteMediaStage uploads a staged file under a temporary public id, then
// renames it to its permanent one so the temp object never leaks.
func (s *userService) promoteMediaStage(ctx context.Context, localPath, prefix string) (*dbmongo.MediaRef, error) {
	tempID := prefix + "-temp-" + uuid.NewString()

	asset, err := s.delegate.Store(ctx, localPath, tempID)
	if err != nil {
		return nil, common.NewApiError(common.KindUploadFailed, "failed to upload "+prefix).WithCause(err)
	}

	permanentID := prefix + "-" + uuid.NewString()
	renamed, err := s.delegate.Rename(ctx, asset.PublicID, permanentID)
	if err != nil {
		return nil, common.NewApiError(common.KindUploadFailed, "unable to update public id for "+prefix).WithCause(err)
	}
	return &dbmongo.MediaRef{URL: renamed.URL, PublicID: renamed.PublicID}, nil
}

func (s *userService) Login(ctx context.Context, usernameOrEmail, password string) (*dbmongo.User, *TokenPair, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, nil, common.NewApiError(common.KindInvalidInput, "username/email and password required")
	}

	user, err := s.userRepo.GetUserByLogin(ctx, usernameOrEmail)
	if err != nil {
		return nil, nil, err
	}
	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, nil, common.NewApiError(common.KindUnauthorized, "invalid credentials")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *userService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "")
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "refresh token required")
	}

	claims, err := common.ValidRefreshToken(refreshToken)
	if err != nil {
		return nil, common.NewApiError(common.KindUnauthorized, "invalid or expired refresh token")
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, common.NewApiError(common.KindUnauthorized, "invalid refresh token subject")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// a stale or already-rotated token no longer matches the stored hash
	if user.RefreshTokenHash == "" || user.RefreshTokenHash != hashToken(refreshToken) {
		return nil, common.NewApiError(common.KindUnauthorized, "refresh token is expired or already used")
	}

	return s.issueTokens(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := common.CheckPassword(oldPassword, user.PasswordHash); err != nil {
		return common.NewApiError(common.KindUnauthorized, "current password is incorrect")
	}
	if err := common.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := hashPasswordStage(newPassword)
	if err != nil {
		return common.WrapInternal("failed to hash password", err)
	}
	_, err = s.userRepo.UpdateProfile(ctx, userID, bson.M{"password": hash})
	return err
}

func (s *userService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, fullName, email string) (*dbmongo.User, error) {
	set := bson.M{}
	if strings.TrimSpace(fullName) != "" {
		set["fullName"] = strings.TrimSpace(fullName)
	}
	if strings.TrimSpace(email) != "" {
		if err := common.ValidateEmail(email); err != nil {
			return nil, err
		}
		set["email"] = common.NormalizeEmail(email)
	}
	if len(set) == 0 {
		return nil, common.NewApiError(common.KindInvalidInput, "nothing to update")
	}
	return s.userRepo.UpdateProfile(ctx, userID, set)
}

func (s *userService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, localPath string) (*dbmongo.User, error) {
	return s.replaceMedia(ctx, userID, localPath, "avatar")
}

func (s *userService) UpdateCover(ctx context.Context, userID primitive.ObjectID, localPath string) (*dbmongo.User, error) {
	return s.replaceMedia(ctx, userID, localPath, "cover")
}

// replaceMedia re-uses the stored public id so the delegate overwrites in
// place instead of orphaning the old object.
func (s *userService) replaceMedia(ctx context.Context, userID primitive.ObjectID, localPath, which string) (*dbmongo.User, error) {
	if localPath == "" {
		return nil, common.NewApiError(common.KindInvalidInput, which+" file is required")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existingID := user.Avatar.PublicID
	field := "avatar"
	if which == "cover" {
		existingID = user.CoverImage.PublicID
		field = "coverImage"
	}
	if existingID == "" {
		existingID = which + "-" + uuid.NewString()
	}

	asset, err := s.delegate.Store(ctx, localPath, existingID)
	if err != nil {
		return nil, common.NewApiError(common.KindUploadFailed, "failed to upload "+which).WithCause(err)
	}

	return s.userRepo.UpdateProfile(ctx, userID, bson.M{
		field: dbmongo.MediaRef{URL: asset.URL, PublicID: asset.PublicID},
	})
}

func (s *userService) WatchHistory(ctx context.Context, userID primitive.ObjectID, page common.PageParams) ([]dbmongo.VideoWithOwner, error) {
	return s.userRepo.WatchHistory(ctx, userID, page)
}

func (s *userService) ChannelProfile(ctx context.Context, username string, viewerID primitive.ObjectID) (*dbmongo.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, common.NewApiError(common.KindInvalidIdentifier, "missing username")
	}
	return s.userRepo.ChannelProfile(ctx, username, viewerID)
}

func (s *userService) issueTokens(ctx context.Context, user *dbmongo.User) (*TokenPair, error) {
	access, err := common.GenerateAccessToken(user.ID.Hex(), user.Username, user.Email, user.FullName)
	if err != nil {
		return nil, common.WrapInternal("failed to generate access token", err)
	}
	refresh, err := common.GenerateRefreshToken(user.ID.Hex())
	if err != nil {
		return nil, common.WrapInternal("failed to generate refresh token", err)
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, hashToken(refresh)); err != nil {
		logrus.WithError(err).Error("failed to persist refresh token hash")
		return nil, common.WrapInternal("failed to persist refresh token", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// hashToken stores a digest rather than the raw refresh token, a leaked
// users collection does not leak usable tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
