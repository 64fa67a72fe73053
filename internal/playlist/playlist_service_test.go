package playlist

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

func newPlaylistServiceForTest(t *testing.T) (*MockPlaylistRepository, PlaylistService) {
	ctrl := gomock.NewController(t)
	playlistRepo := NewMockPlaylistRepository(ctrl)
	return playlistRepo, NewPlaylistService(playlistRepo)
}

func TestCreatePlaylist(t *testing.T) {
	repo, svc := newPlaylistServiceForTest(t)
	ownerID := primitive.NewObjectID()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *dbmongo.Playlist) error {
			require.Equal(t, "road trip", p.Name)
			require.Equal(t, ownerID, p.Owner)
			require.True(t, p.IsPrivate)
			p.ID = primitive.NewObjectID()
			return nil
		})

	playlist, err := svc.Create(context.Background(), ownerID, CreateInput{
		Name:      "  road trip ",
		IsPrivate: true,
	})
	require.NoError(t, err)
	require.False(t, playlist.ID.IsZero())
}

func TestCreatePlaylist_DuplicateName(t *testing.T) {
	repo, svc := newPlaylistServiceForTest(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(common.NewApiError(common.KindInvalidOperation, "a playlist with this name already exists"))

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), CreateInput{Name: "favorites"})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidOperation, apiErr.Kind)
}

func TestCreatePlaylist_MissingName(t *testing.T) {
	_, svc := newPlaylistServiceForTest(t)

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), CreateInput{Name: "   "})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidInput, apiErr.Kind)
}

func TestGetPlaylist_PrivateHiddenFromOthers(t *testing.T) {
	repo, svc := newPlaylistServiceForTest(t)
	playlistID := primitive.NewObjectID()

	stored := &dbmongo.PlaylistWithDetails{
		Playlist: dbmongo.Playlist{ID: playlistID, IsPrivate: true},
		Owner:    dbmongo.CondensedProfile{ID: primitive.NewObjectID()},
	}
	repo.EXPECT().GetWithDetails(gomock.Any(), playlistID).Return(stored, nil)

	_, err := svc.Get(context.Background(), primitive.NewObjectID(), playlistID.Hex())
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
}

func TestGetPlaylist_PrivateVisibleToOwner(t *testing.T) {
	repo, svc := newPlaylistServiceForTest(t)
	ownerID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	stored := &dbmongo.PlaylistWithDetails{
		Playlist: dbmongo.Playlist{ID: playlistID, Owner: ownerID, IsPrivate: true},
		Owner:    dbmongo.CondensedProfile{ID: ownerID},
	}
	repo.EXPECT().GetWithDetails(gomock.Any(), playlistID).Return(stored, nil)

	playlist, err := svc.Get(context.Background(), ownerID, playlistID.Hex())
	require.NoError(t, err)
	require.Equal(t, playlistID, playlist.ID)
}

func TestListByUser_VisibilityDependsOnViewer(t *testing.T) {
	ownerID := primitive.NewObjectID()

	t.Run("owner sees private playlists", func(t *testing.T) {
		repo, svc := newPlaylistServiceForTest(t)
		repo.EXPECT().UserExists(gomock.Any(), ownerID).Return(true, nil)
		repo.EXPECT().
			ListByUser(gomock.Any(), ownerID, false, gomock.Any()).
			Return([]dbmongo.PlaylistWithDetails{}, nil)

		_, err := svc.ListByUser(context.Background(), ownerID, ownerID.Hex(), common.PageParams{})
		require.NoError(t, err)
	})

	t.Run("others see public only", func(t *testing.T) {
		repo, svc := newPlaylistServiceForTest(t)
		repo.EXPECT().UserExists(gomock.Any(), ownerID).Return(true, nil)
		repo.EXPECT().
			ListByUser(gomock.Any(), ownerID, true, gomock.Any()).
			Return([]dbmongo.PlaylistWithDetails{}, nil)

		_, err := svc.ListByUser(context.Background(), primitive.NewObjectID(), ownerID.Hex(), common.PageParams{})
		require.NoError(t, err)
	})
}

func TestAddVideo(t *testing.T) {
	ownerID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	tests := []struct {
		name     string
		setup    func(repo *MockPlaylistRepository)
		wantKind common.ErrorKind
	}{
		{
			name: "success",
			setup: func(repo *MockPlaylistRepository) {
				repo.EXPECT().VideoOwned(gomock.Any(), videoID, ownerID).Return(true, nil)
				repo.EXPECT().AddVideoOwned(gomock.Any(), playlistID, ownerID, videoID).Return(nil)
				repo.EXPECT().
					GetWithDetails(gomock.Any(), playlistID).
					Return(&dbmongo.PlaylistWithDetails{
						Playlist: dbmongo.Playlist{ID: playlistID, Videos: []primitive.ObjectID{videoID}},
						Videos:   []dbmongo.VideoSummary{{ID: videoID, Title: "clip"}},
					}, nil)
			},
		},
		{
			name: "video not owned by caller",
			setup: func(repo *MockPlaylistRepository) {
				repo.EXPECT().VideoOwned(gomock.Any(), videoID, ownerID).Return(false, nil)
			},
			wantKind: common.KindNotFound,
		},
		{
			name: "duplicate membership",
			setup: func(repo *MockPlaylistRepository) {
				repo.EXPECT().VideoOwned(gomock.Any(), videoID, ownerID).Return(true, nil)
				repo.EXPECT().
					AddVideoOwned(gomock.Any(), playlistID, ownerID, videoID).
					Return(common.NewApiError(common.KindInvalidOperation, "video is already in the playlist"))
			},
			wantKind: common.KindInvalidOperation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, svc := newPlaylistServiceForTest(t)
			tc.setup(repo)

			playlist, err := svc.AddVideo(context.Background(), ownerID, playlistID.Hex(), videoID.Hex())
			if tc.wantKind != "" {
				apiErr, ok := common.AsApiError(err)
				require.True(t, ok)
				require.Equal(t, tc.wantKind, apiErr.Kind)
				return
			}
			require.NoError(t, err)
			require.Len(t, playlist.Videos, 1)
		})
	}
}

func TestRemoveVideo_NonMember(t *testing.T) {
	repo, svc := newPlaylistServiceForTest(t)
	ownerID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	repo.EXPECT().VideoOwned(gomock.Any(), videoID, ownerID).Return(true, nil)
	repo.EXPECT().
		RemoveVideoOwned(gomock.Any(), playlistID, ownerID, videoID).
		Return(common.NewApiError(common.KindInvalidOperation, "video is not in the playlist"))

	_, err := svc.RemoveVideo(context.Background(), ownerID, playlistID.Hex(), videoID.Hex())
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidOperation, apiErr.Kind)
}

func TestUpdatePlaylist_OnlySuppliedFieldsChange(t *testing.T) {
	repo, svc := newPlaylistServiceForTest(t)
	ownerID := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	private := false
	repo.EXPECT().
		UpdateOwned(gomock.Any(), playlistID, ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ primitive.ObjectID, set bson.M) (*dbmongo.Playlist, error) {
			require.Equal(t, bson.M{"isPrivate": false}, set)
			return &dbmongo.Playlist{ID: playlistID}, nil
		})

	_, err := svc.Update(context.Background(), ownerID, playlistID.Hex(), UpdateInput{IsPrivate: &private})
	require.NoError(t, err)
}

func TestUpdatePlaylist_NothingToUpdate(t *testing.T) {
	_, svc := newPlaylistServiceForTest(t)

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), primitive.NewObjectID().Hex(), UpdateInput{})
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindInvalidOperation, apiErr.Kind)
}

func TestDeletePlaylist_NonOwnerLooksLikeNotFound(t *testing.T) {
	repo, svc := newPlaylistServiceForTest(t)
	playlistID := primitive.NewObjectID()
	callerID := primitive.NewObjectID()

	repo.EXPECT().
		DeleteOwned(gomock.Any(), playlistID, callerID).
		Return(common.NewApiError(common.KindNotFound, "playlist not found"))

	err := svc.Delete(context.Background(), callerID, playlistID.Hex())
	apiErr, ok := common.AsApiError(err)
	require.True(t, ok)
	require.Equal(t, common.KindNotFound, apiErr.Kind)
}
