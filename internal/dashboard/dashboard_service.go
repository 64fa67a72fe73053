package dashboard

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

type DashboardService interface {
	ChannelStats(ctx context.Context, channel primitive.ObjectID) (*dbmongo.ChannelStats, error)
	ChannelVideos(ctx context.Context, channel primitive.ObjectID, filterRaw string, page common.PageParams) ([]dbmongo.Video, error)
}

type dashboardService struct {
	dashboardRepo DashboardRepository
}

func NewDashboardService(dashboardRepo DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

// ChannelStats combines the video rollup with the two subscription counts.
// A brand-new channel reports zeros across the board.
func (s *dashboardService) ChannelStats(ctx context.Context, channel primitive.ObjectID) (*dbmongo.ChannelStats, error) {
	stats, err := s.dashboardRepo.VideoStats(ctx, channel)
	if err != nil {
		return nil, common.WrapInternal("failed to aggregate channel stats", err)
	}

	subscribers, err := s.dashboardRepo.SubscriberCount(ctx, channel)
	if err != nil {
		return nil, common.WrapInternal("failed to count subscribers", err)
	}
	subscribed, err := s.dashboardRepo.SubscribedCount(ctx, channel)
	if err != nil {
		return nil, common.WrapInternal("failed to count subscribed channels", err)
	}

	stats.TotalSubscribers = subscribers
	stats.TotalChannelsSubscribed = subscribed
	return stats, nil
}

func (s *dashboardService) ChannelVideos(ctx context.Context, channel primitive.ObjectID, filterRaw string, page common.PageParams) ([]dbmongo.Video, error) {
	filter := FilterPublished
	switch filterRaw {
	case "", string(FilterPublished):
	case string(FilterUnpublished):
		filter = FilterUnpublished
	case string(FilterAll):
		filter = FilterAll
	default:
		return nil, common.NewApiError(common.KindInvalidInput, "isPublished must be published, unpublished or all")
	}
	return s.dashboardRepo.ChannelVideos(ctx, channel, filter, page)
}
