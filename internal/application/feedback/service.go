package feedback

import (
	"context"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, authorEmail string, req domain.CreateFeedbackRequest) (*domain.Feedback, error)
}

type feedbackStore interface {
	Put(ctx context.Context, f *domain.Feedback) error
}

type service struct {
	repo feedbackStore
}

func NewService(repo feedbackStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, authorEmail string, req domain.CreateFeedbackRequest) (*domain.Feedback, error) {
	f := &domain.Feedback{
		FeedbackID:   id.New(),
		FeedbackType: req.FeedbackType,
		Message:      req.Message,
		ContactEmail: req.ContactEmail,
		CreatedBy:    authorEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
