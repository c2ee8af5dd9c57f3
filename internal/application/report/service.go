package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, reporterEmail string, req domain.CreateReportRequest) (*domain.ContentReport, error)
}

type reportStore interface {
	Put(ctx context.Context, r *domain.ContentReport) error
}

type sharedSmileStore interface {
	Get(ctx context.Context, smileID string) (*domain.SharedSmile, error)
	Flag(ctx context.Context, smileID string, at time.Time) error
}

type service struct {
	repo   reportStore
	smiles sharedSmileStore
	now    func() time.Time
}

func NewService(repo reportStore, smiles sharedSmileStore) Service {
	return &service{repo: repo, smiles: smiles, now: time.Now}
}

// Create stores the report and, for shared smiles, flags the target so the
// feed hides it during the moderation grace window. A flagging failure is
// logged but does not fail the report; the record itself is the source of
// truth for moderators.
func (s *service) Create(ctx context.Context, reporterEmail string, req domain.CreateReportRequest) (*domain.ContentReport, error) {
	now := s.now().UTC()
	report := &domain.ContentReport{
		ReportID:            id.New(),
		ReportedContentType: req.ReportedContentType,
		ReportedContentID:   req.ReportedContentID,
		ReportReason:        req.ReportReason,
		AdditionalDetails:   req.AdditionalDetails,
		CreatedBy:           reporterEmail,
		CreatedAt:           now,
	}
	if err := s.repo.Put(ctx, report); err != nil {
		return nil, err
	}

	if req.ReportedContentType == domain.ItemTypeSharedSmile {
		s.flagTarget(ctx, req.ReportedContentID, now)
	}
	return report, nil
}

func (s *service) flagTarget(ctx context.Context, smileID string, at time.Time) {
	if _, err := s.smiles.Get(ctx, smileID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.Warn("reported shared smile does not exist", "smile_id", smileID)
		} else {
			slog.Error("could not load reported shared smile", "smile_id", smileID, "err", err)
		}
		return
	}
	if err := s.smiles.Flag(ctx, smileID, at); err != nil {
		slog.Error("could not flag reported shared smile", "smile_id", smileID, "err", err)
	}
}
