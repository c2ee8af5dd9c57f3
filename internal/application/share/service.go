package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/infrastructure/geocode"
	"github.com/mysmileproject/api/internal/pkg/id"
)

type ShareInput struct {
	Filename    string
	ContentType string
	Reader      io.Reader
	Description string
	Latitude    float64
	Longitude   float64
	OwnerEmail  string
}

type Service interface {
	Share(ctx context.Context, input ShareInput) (*domain.SharedSmile, error)
}

type sharedSmileStore interface {
	Put(ctx context.Context, s *domain.SharedSmile) error
}

type imageStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

type service struct {
	repo           sharedSmileStore
	images         imageStore
	geocoder       geocode.ReverseGeocoder
	geocodeTimeout time.Duration
	now            func() time.Time
}

func NewService(repo sharedSmileStore, images imageStore, geocoder geocode.ReverseGeocoder, geocodeTimeout time.Duration) Service {
	return &service{
		repo:           repo,
		images:         images,
		geocoder:       geocoder,
		geocodeTimeout: geocodeTimeout,
		now:            time.Now,
	}
}

// Share runs the pipeline strictly in order: reverse-geocode, upload, create.
// Each step only runs after the previous one succeeded, and the record is
// written last, so a failure anywhere leaves nothing to roll back except a
// possible orphaned object in S3.
func (s *service) Share(ctx context.Context, input ShareInput) (*domain.SharedSmile, error) {
	if s.geocoder == nil {
		return nil, errors.New("reverse geocoder not configured")
	}
	gctx, cancel := context.WithTimeout(ctx, s.geocodeTimeout)
	defer cancel()
	place, err := s.geocoder.Reverse(gctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode: %w", err)
	}

	smileID := id.New()
	key := fmt.Sprintf("smiles/%s/%s_%s", input.OwnerEmail, smileID, sanitizeFilename(input.Filename))
	imageURL, err := s.images.Upload(ctx, key, input.Reader, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = domain.DefaultShareCaption
	}
	smile := &domain.SharedSmile{
		SmileID:      smileID,
		ImageURL:     imageURL,
		Description:  description,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		LocationName: place.Name(),
		CreatedBy:    input.OwnerEmail,
		CreatedDate:  s.now().UTC(),
	}
	if err := s.repo.Put(ctx, smile); err != nil {
		return nil, err
	}
	return smile, nil
}

// sanitizeFilename strips directory components and keeps only safe characters
// (alphanumeric, dot, dash, underscore) to prevent path traversal in S3 keys.
func sanitizeFilename(name string) string {
	name = path.Base(name)
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
