package feeds

import (
	"context"
	"strings"
	"time"

	"farm-records/internal/domain/errs"
	"farm-records/internal/platform/validation"

	"github.com/google/uuid"
)

// DeleteGuard bloquea el borrado mientras haya porcinos usando la alimentación.
type DeleteGuard interface {
	GuardDeleteFeed(ctx context.Context, feedID string) error
}

type Service struct {
	repo  Repository
	guard DeleteGuard
	now   func() time.Time
}

func NewService(repo Repository, guard DeleteGuard) *Service {
	return &Service{
		repo:  repo,
		guard: guard,
		now:   time.Now,
	}
}

type CreateInput struct {
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Dose        string  `json:"dose"`
}

type UpdateInput struct {
	Description *string  `json:"description"`
	Brand       *string  `json:"brand"`
	Quantity    *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Dose        *string  `json:"dose"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Feed, error) {
	if err := validation.Struct(in); err != nil {
		return Feed{}, err
	}

	now := s.now()
	f := PrepareWrite(Feed{
		ID:          uuid.NewString(),
		Description: in.Description,
		Brand:       in.Brand,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Dose:        in.Dose,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if f.Description == "" {
		return Feed{}, errs.Validation("description", "description is required")
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Feed{}, err
	}
	return f, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Feed, error) {
	if err := validation.Struct(in); err != nil {
		return Feed{}, err
	}

	f, err := s.GetByID(ctx, id)
	if err != nil {
		return Feed{}, err
	}

	if in.Description != nil {
		f.Description = *in.Description
		f.FoodType = ""
	}
	if in.Brand != nil {
		f.Brand = *in.Brand
	}
	if in.Quantity != nil {
		f.Quantity = *in.Quantity
	}
	if in.Price != nil {
		f.Price = *in.Price
	}
	if in.Dose != nil {
		f.Dose = *in.Dose
	}
	f.UpdatedAt = s.now()

	f = PrepareWrite(f)
	if f.Description == "" {
		return Feed{}, errs.Validation("description", "description is required")
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return Feed{}, err
	}
	return f, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Feed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Feed{}, errs.NotFound(errs.EntityFeed)
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Feed{}, err
	}
	return Reconcile(f), nil
}

func (s *Service) List(ctx context.Context) ([]Feed, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = Reconcile(items[i])
	}
	return items, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NotFound(errs.EntityFeed)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if s.guard != nil {
		if err := s.guard.GuardDeleteFeed(ctx, id); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}
