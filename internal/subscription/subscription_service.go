package subscription

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/common"
	"vidtube/internal/dbmongo"
)

// ToggleResult reports the subscription state after a toggle.
type ToggleResult struct {
	Subscribed bool `json:"subscribed"`
}

// SubscriberPage carries one page of subscriber profiles plus the
// authoritative total across all pages.
type SubscriberPage struct {
	Subscribers []dbmongo.CondensedProfile `json:"subscribers"`
	Total       int64                      `json:"total"`
}

type SubscriptionService interface {
	Toggle(ctx context.Context, subscriber primitive.ObjectID, channelIDRaw string) (*ToggleResult, error)
	Subscribers(ctx context.Context, channelIDRaw string, page common.PageParams) (*SubscriberPage, error)
	SubscribedChannels(ctx context.Context, subscriberIDRaw string, page common.PageParams) ([]dbmongo.CondensedProfile, error)
}

type subscriptionService struct {
	subscriptionRepo SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

func (s *subscriptionService) Toggle(ctx context.Context, subscriber primitive.ObjectID, channelIDRaw string) (*ToggleResult, error) {
	channelID, err := common.ParseObjectID(channelIDRaw, "channel")
	if err != nil {
		return nil, err
	}
	if channelID == subscriber {
		return nil, common.NewApiError(common.KindInvalidOperation, "cannot subscribe to your own channel")
	}

	exists, err := s.subscriptionRepo.UserExists(ctx, channelID)
	if err != nil {
		return nil, common.WrapInternal("failed to look up channel", err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, "channel not found")
	}

	subscribed, err := s.subscriptionRepo.Toggle(ctx, subscriber, channelID)
	if err != nil {
		return nil, common.WrapInternal("something went wrong while toggling the subscription", err)
	}
	return &ToggleResult{Subscribed: subscribed}, nil
}

func (s *subscriptionService) Subscribers(ctx context.Context, channelIDRaw string, page common.PageParams) (*SubscriberPage, error) {
	channelID, err := common.ParseObjectID(channelIDRaw, "channel")
	if err != nil {
		return nil, err
	}

	exists, err := s.subscriptionRepo.UserExists(ctx, channelID)
	if err != nil {
		return nil, common.WrapInternal("failed to look up channel", err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, "channel not found")
	}

	subscribers, err := s.subscriptionRepo.Subscribers(ctx, channelID, page)
	if err != nil {
		return nil, common.WrapInternal("failed to list subscribers", err)
	}
	total, err := s.subscriptionRepo.SubscriberCount(ctx, channelID)
	if err != nil {
		return nil, common.WrapInternal("failed to count subscribers", err)
	}
	return &SubscriberPage{Subscribers: subscribers, Total: total}, nil
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberIDRaw string, page common.PageParams) ([]dbmongo.CondensedProfile, error) {
	subscriberID, err := common.ParseObjectID(subscriberIDRaw, "subscriber")
	if err != nil {
		return nil, err
	}

	exists, err := s.subscriptionRepo.UserExists(ctx, subscriberID)
	if err != nil {
		return nil, common.WrapInternal("failed to look up user", err)
	}
	if !exists {
		return nil, common.NewApiError(common.KindNotFound, "user not found")
	}
	return s.subscriptionRepo.SubscribedChannels(ctx, subscriberID, page)
}
