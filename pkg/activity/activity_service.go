package activity

import (
	"SevChefs-API/domain"
	"context"

	"github.com/google/uuid"
)

type (
	ActivityService interface {
		GetFeed(ctx context.Context, viewerID string) ([]domain.ActivityEntryResponse, error)
	}

	activityService struct {
		activityRepository ActivityRepository
	}
)

func NewActivityService(activityRepository ActivityRepository) ActivityService {
	return &activityService{activityRepository: activityRepository}
}

func (s *activityService) GetFeed(ctx context.Context, viewerID string) ([]domain.ActivityEntryResponse, error) {
	viewerUUID, err := uuid.Parse(viewerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	entries, err := s.activityRepository.GetFeedForViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	feed := make([]domain.ActivityEntryResponse, 0, len(entries))
	for _, entry := range entries {
		summary := SummaryEntry{
			Kind:         entry.Kind,
			ActorID:      entry.ActorID,
			TargetUserID: entry.TargetUserID,
		}
		if entry.Actor != nil {
			summary.ActorUsername = entry.Actor.Username
		}
		if entry.TargetUser != nil {
			summary.TargetUsername = entry.TargetUser.Username
		}

		sentence, err := RenderSummary(summary, viewerUUID)
		if err != nil {
			return nil, err
		}

		feed = append(feed, domain.ActivityEntryResponse{
			ID:             entry.ID.String(),
			Summary:        sentence,
			MainImageURL:   entry.MainImageURL,
			TargetImageURL: entry.TargetImageURL,
			CreatedAt:      entry.CreatedAt,
		})
	}

	return feed, nil
}
