package playlist

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPrivate   *bool   `json:"isPrivate"`
}

type PlaylistService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, input CreateInput) (*dbmongo.Playlist, error)
	Get(ctx context.Context, viewerID primitive.ObjectID, playlistIDRaw string) (*dbmongo.PlaylistWithDetails, error)
	ListByUser(ctx context.Context, viewerID primitive.ObjectID, userIDRaw string, page common.PageParams) ([]dbmongo.PlaylistWithDetails, error)
	AddVideo(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw, videoIDRaw string) (*dbmongo.PlaylistWithDetails, error)
	RemoveVideo(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw, videoIDRaw string) (*dbmongo.PlaylistWithDetails, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw string, input UpdateInput) (*dbmongo.Playlist, error)
	Delete(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw string) error
}

type playlistService struct {
	playlistRepo PlaylistRepository
}

func NewPlaylistService(playlistRepo PlaylistRepository) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo}
}

func (s *playlistService) Create(ctx context.Context, ownerID primitive.ObjectID, input CreateInput) (*dbmongo.Playlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, common.NewApiError(common.KindInvalidInput, "playlist name is required")
	}

	playlist := &dbmongo.Playlist{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		IsPrivate:   input.IsPrivate,
		Owner:       ownerID,
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		if _, ok := common.AsApiError(err); ok {
			return nil, err
		}
		return nil, common.WrapInternal("something went wrong while creating the playlist", err)
	}
	return playlist, nil
}

func (s *playlistService) Get(ctx context.Context, viewerID primitive.ObjectID, playlistIDRaw string) (*dbmongo.PlaylistWithDetails, error) {
	playlistID, err := common.ParseObjectID(playlistIDRaw, "playlist")
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlistRepo.GetWithDetails(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.IsPrivate && playlist.Owner.ID != viewerID {
		// hidden the same way a missing playlist is
		return nil, common.NewApiError(common.KindNotFound, "playlist not found")
	}
	return playlist, nil
}

func (s *playlistService) ListByUser(ctx context.Context, viewerID primitive.ObjectID, userIDRaw string, page common.PageParams) ([]dbmongo.PlaylistWithDetails, error) {
	userID, err := common.ParseObjectID(userIDRaw, "user")
	if err != nil {
		return nil, err
	}

	exists, err := s.playlistRepo.UserExists(ctx, userID)
	if err != nil {
		return nil, common.WrapInternal("failed to look up user", err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, "user not found")
	}

	// owners see their private playlists, everyone else sees public only
	publicOnly := userID != viewerID
	return s.playlistRepo.ListByUser(ctx, userID, publicOnly, page)
}

func (s *playlistService) AddVideo(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw, videoIDRaw string) (*dbmongo.PlaylistWithDetails, error) {
	playlistID, videoID, err := s.membershipIDs(ctx, ownerID, playlistIDRaw, videoIDRaw)
	if err != nil {
		return nil, err
	}
	if err := s.playlistRepo.AddVideoOwned(ctx, playlistID, ownerID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetWithDetails(ctx, playlistID)
}

func (s *playlistService) RemoveVideo(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw, videoIDRaw string) (*dbmongo.PlaylistWithDetails, error) {
	playlistID, videoID, err := s.membershipIDs(ctx, ownerID, playlistIDRaw, videoIDRaw)
	if err != nil {
		return nil, err
	}
	if err := s.playlistRepo.RemoveVideoOwned(ctx, playlistID, ownerID, videoID); err != nil {
		return nil, err
	}
	return s.playlistRepo.GetWithDetails(ctx, playlistID)
}

// membershipIDs parses both ids and checks the caller owns the video; the
// playlist ownership check rides along on the membership write itself.
func (s *playlistService) membershipIDs(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw, videoIDRaw string) (primitive.ObjectID, primitive.ObjectID, error) {
	playlistID, err := common.ParseObjectID(playlistIDRaw, "playlist")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	videoID, err := common.ParseObjectID(videoIDRaw, "video")
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}

	owned, err := s.playlistRepo.VideoOwned(ctx, videoID, ownerID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, common.WrapInternal("failed to look up video", err)
	}
	if !owned {
		return primitive.NilObjectID, primitive.NilObjectID, common.NewApiError(common.KindNotFound, "video not found")
	}
	return playlistID, videoID, nil
}

func (s *playlistService) Update(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw string, input UpdateInput) (*dbmongo.Playlist, error) {
	playlistID, err := common.ParseObjectID(playlistIDRaw, "playlist")
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		set["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		set["description"] = strings.TrimSpace(*input.Description)
	}
	if input.IsPrivate != nil {
		set["isPrivate"] = *input.IsPrivate
	}
	if len(set) == 0 {
		return nil, common.NewApiError(common.KindInvalidOperation, "nothing to update")
	}

	return s.playlistRepo.UpdateOwned(ctx, playlistID, ownerID, set)
}

func (s *playlistService) Delete(ctx context.Context, ownerID primitive.ObjectID, playlistIDRaw string) error {
	playlistID, err := common.ParseObjectID(playlistIDRaw, "playlist")
	if err != nil {
		return err
	}
	return s.playlistRepo.DeleteOwned(ctx, playlistID, ownerID)
}
