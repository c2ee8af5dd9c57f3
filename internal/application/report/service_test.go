package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReports struct {
	created *domain.ContentReport
	err     error
}

func (s *stubReports) Put(_ context.Context, r *domain.ContentReport) error {
	if s.err != nil {
		return s.err
	}
	s.created = r
	return nil
}

type stubSmiles struct {
	getErr  error
	flagErr error
	flagged []string
}

func (s *stubSmiles) Get(_ context.Context, smileID string) (*domain.SharedSmile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.SharedSmile{SmileID: smileID}, nil
}

func (s *stubSmiles) Flag(_ context.Context, smileID string, _ time.Time) error {
	if s.flagErr != nil {
		return s.flagErr
	}
	s.flagged = append(s.flagged, smileID)
	return nil
}

func req(contentType string) domain.CreateReportRequest {
	return domain.CreateReportRequest{
		ReportedContentType: contentType,
		ReportedContentID:   "target-1",
		ReportReason:        domain.ReasonSpam,
	}
}

func TestCreate_SharedSmileReportFlagsTarget(t *testing.T) {
	reports := &stubReports{}
	smiles := &stubSmiles{}

	got, err := NewService(reports, smiles).Create(context.Background(), "alice@example.com", req(domain.ItemTypeSharedSmile))

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.CreatedBy)
	assert.Equal(t, domain.ReasonSpam, got.ReportReason)
	assert.Equal(t, []string{"target-1"}, smiles.flagged)
}

func TestCreate_NotificationReportDoesNotFlag(t *testing.T) {
	reports := &stubReports{}
	smiles := &stubSmiles{}

	_, err := NewService(reports, smiles).Create(context.Background(), "alice@example.com", req(domain.ItemTypeNotification))

	require.NoError(t, err)
	assert.Empty(t, smiles.flagged)
}

func TestCreate_FlagFailureStillCreatesReport(t *testing.T) {
	reports := &stubReports{}
	smiles := &stubSmiles{flagErr: errors.New("throttled")}

	got, err := NewService(reports, smiles).Create(context.Background(), "alice@example.com", req(domain.ItemTypeSharedSmile))

	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, reports.created)
}

func TestCreate_MissingTargetStillCreatesReport(t *testing.T) {
	reports := &stubReports{}
	smiles := &stubSmiles{getErr: domain.ErrNotFound}

	_, err := NewService(reports, smiles).Create(context.Background(), "alice@example.com", req(domain.ItemTypeSharedSmile))

	require.NoError(t, err)
	assert.Empty(t, smiles.flagged)
	require.NotNil(t, reports.created)
}

func TestCreate_StoreErrorFailsReport(t *testing.T) {
	reports := &stubReports{err: errors.New("table missing")}
	smiles := &stubSmiles{}

	_, err := NewService(reports, smiles).Create(context.Background(), "alice@example.com", req(domain.ItemTypeSharedSmile))

	require.Error(t, err)
	assert.Empty(t, smiles.flagged)
}
