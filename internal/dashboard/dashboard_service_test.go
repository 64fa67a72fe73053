package dashboard

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

func newDashboardServiceForTest(t *testing.T) (*MockDashboardRepository, DashboardService) {
	ctrl := gomock.NewController(t)
	dashboardRepo := NewMockDashboardRepository(ctrl)
	return dashboardRepo, NewDashboardService(dashboardRepo)
}

func TestChannelStats(t *testing.T) {
	repo, svc := newDashboardServiceForTest(t)
	channel := primitive.NewObjectID()

	repo.EXPECT().VideoStats(gomock.Any(), channel).Return(&dbmongo.ChannelStats{
		TotalVideos: 12,
		TotalViews:  3400,
		TotalLikes:  87,
	}, nil)
	repo.EXPECT().SubscriberCount(gomock.Any(), channel).Return(int64(250), nil)
	repo.EXPECT().SubscribedCount(gomock.Any(), channel).Return(int64(9), nil)

	stats, err := svc.ChannelStats(context.Background(), channel)
	require.NoError(t, err)
	require.Equal(t, int64(12), stats.TotalVideos)
	require.Equal(t, int64(3400), stats.TotalViews)
	require.Equal(t, int64(87), stats.TotalLikes)
	require.Equal(t, int64(250), stats.TotalSubscribers)
	require.Equal(t, int64(9), stats.TotalChannelsSubscribed)
}

func TestChannelStats_EmptyChannelIsAllZero(t *testing.T) {
	repo, svc := newDashboardServiceForTest(t)
	channel := primitive.NewObjectID()

	repo.EXPECT().VideoStats(gomock.Any(), channel).Return(&dbmongo.ChannelStats{}, nil)
	repo.EXPECT().SubscriberCount(gomock.Any(), channel).Return(int64(0), nil)
	repo.EXPECT().SubscribedCount(gomock.Any(), channel).Return(int64(0), nil)

	stats, err := svc.ChannelStats(context.Background(), channel)
	require.NoError(t, err)
	require.Equal(t, dbmongo.ChannelStats{}, *stats)
}

func TestChannelVideos_FilterParsing(t *testing.T) {
	channel := primitive.NewObjectID()

	tests := []struct {
		name       string
		raw        string
		wantFilter PublishFilter
		wantErr    bool
	}{
		{name: "default is published", raw: "", wantFilter: FilterPublished},
		{name: "published", raw: "published", wantFilter: FilterPublished},
		{name: "unpublished", raw: "unpublished", wantFilter: FilterUnpublished},
		{name: "all", raw: "all", wantFilter: FilterAll},
		{name: "garbage rejected", raw: "maybe", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, svc := newDashboardServiceForTest(t)
			if !tc.wantErr {
				repo.EXPECT().
					ChannelVideos(gomock.Any(), channel, tc.wantFilter, gomock.Any()).
					Return([]dbmongo.Video{}, nil)
			}

			_, err := svc.ChannelVideos(context.Background(), channel, tc.raw, common.PageParams{})
			if tc.wantErr {
				apiErr, ok := common.AsApiError(err)
				require.True(t, ok)
				require.Equal(t, common.KindInvalidInput, apiErr.Kind)
				return
			}
			require.NoError(t, err)
		})
	}
}
