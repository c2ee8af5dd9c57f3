package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mysmileproject/api/internal/domain"
	"github.com/mysmileproject/api/internal/pkg/id"
)

type CreateSmileRequest struct {
	ImageURL    string `json:"image_url" validate:"required,url"`
	Description string `json:"description" validate:"required"`
	Enable      *bool  `json:"enable"`
}

type UpdateSmileRequest struct {
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Description *string `json:"description"`
	Enable      *bool   `json:"enable"`
}

type Service interface {
	Create(ctx context.Context, req CreateSmileRequest) (*domain.CuratedSmile, error)
	Get(ctx context.Context, smileID string) (*domain.CuratedSmile, error)
	ListEnabled(ctx context.Context) ([]domain.CuratedSmile, error)
	Update(ctx context.Context, smileID string, req UpdateSmileRequest) (*domain.CuratedSmile, error)
	Delete(ctx context.Context, smileID string) error

	// RandomEnabled picks one enabled catalog entry for a delivery.
	RandomEnabled(ctx context.Context) (*domain.CuratedSmile, error)

	// EnsureSeeded loads the built-in curated list into an empty catalog.
	EnsureSeeded(ctx context.Context) error
}

type catalogStore interface {
	Put(ctx context.Context, s *domain.CuratedSmile) error
	Get(ctx context.Context, smileID string) (*domain.CuratedSmile, error)
	ListEnabled(ctx context.Context) ([]domain.CuratedSmile, error)
	Update(ctx context.Context, smileID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, smileID string) error
}

type service struct {
	repo catalogStore
	rng  *rand.Rand
}

func NewService(repo catalogStore) Service {
	return &service{repo: repo, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *service) Create(ctx context.Context, req CreateSmileRequest) (*domain.CuratedSmile, error) {
	enable := true
	if req.Enable != nil {
		enable = *req.Enable
	}
	now := time.Now().UTC()
	smile := &domain.CuratedSmile{
		SmileID:     id.New(),
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Enable:      enable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, smile); err != nil {
		return nil, err
	}
	return smile, nil
}

func (s *service) Get(ctx context.Context, smileID string) (*domain.CuratedSmile, error) {
	return s.repo.Get(ctx, smileID)
}

func (s *service) ListEnabled(ctx context.Context) ([]domain.CuratedSmile, error) {
	return s.repo.ListEnabled(ctx)
}

func (s *service) Update(ctx context.Context, smileID string, req UpdateSmileRequest) (*domain.CuratedSmile, error) {
	updates := map[string]interface{}{}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Enable != nil {
		updates["enable"] = *req.Enable
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}
	if err := s.repo.Update(ctx, smileID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, smileID)
}

func (s *service) Delete(ctx context.Context, smileID string) error {
	return s.repo.HardDelete(ctx, smileID)
}

func (s *service) RandomEnabled(ctx context.Context) (*domain.CuratedSmile, error) {
	smiles, err := s.repo.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if len(smiles) == 0 {
		return nil, fmt.Errorf("curated catalog is empty: %w", domain.ErrNotFound)
	}
	return &smiles[s.rng.Intn(len(smiles))], nil
}

func (s *service) EnsureSeeded(ctx context.Context) error {
	existing, err := s.repo.ListEnabled(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, seed := range seedSmiles {
		smile := &domain.CuratedSmile{
			SmileID:     id.New(),
			ImageURL:    seed.imageURL,
			Description: seed.description,
			Enable:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.repo.Put(ctx, smile); err != nil {
			return fmt.Errorf("seed curated catalog: %w", err)
		}
	}
	slog.Info("seeded curated smile catalog", "count", len(seedSmiles))
	return nil
}
