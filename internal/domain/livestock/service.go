package livestock

import (
	"context"
	"strings"
	"time"

	"farm-records/internal/domain/errs"
	"farm-records/internal/platform/validation"

	"github.com/google/uuid"
)

// RefValidator comprueba que cliente y alimentación existan. nil = no se está asignando.
type RefValidator interface {
	ValidateLivestockRefs(ctx context.Context, clientID, feedID *string) error
}

type Service struct {
	repo Repository
	refs RefValidator
	now  func() time.Time
}

func NewService(repo Repository, refs RefValidator) *Service {
	return &Service{
		repo: repo,
		refs: refs,
		now:  time.Now,
	}
}

type CreateInput struct {
	Tag       string  `json:"tag" validate:"required"`
	Breed     Breed   `json:"breed" validate:"oneof=1 2 3"`
	AgeMonths int     `json:"ageMonths" validate:"gte=0,lte=120"`
	WeightKg  float64 `json:"weightKg" validate:"gt=0,lte=500"`
	ClientID  string  `json:"clientId" validate:"required"`
	FeedID    string  `json:"feedId" validate:"required"`
}

// UpdateInput usa punteros: nil = no tocar. Toda referencia enviada se vuelve a validar.
type UpdateInput struct {
	Tag       *string  `json:"tag"`
	Breed     *Breed   `json:"breed" validate:"omitempty,oneof=1 2 3"`
	AgeMonths *int     `json:"ageMonths" validate:"omitempty,gte=0,lte=120"`
	WeightKg  *float64 `json:"weightKg" validate:"omitempty,gt=0,lte=500"`
	ClientID  *string  `json:"clientId"`
	FeedID    *string  `json:"feedId"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Livestock, error) {
	in.Tag = NormalizeTag(in.Tag)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.FeedID = strings.TrimSpace(in.FeedID)
	if err := validation.Struct(in); err != nil {
		return Livestock{}, err
	}

	if s.refs != nil {
		if err := s.refs.ValidateLivestockRefs(ctx, &in.ClientID, &in.FeedID); err != nil {
			return Livestock{}, err
		}
	}

	now := s.now()
	l := Reconcile(Livestock{
		ID:        uuid.NewString(),
		Tag:       in.Tag,
		Breed:     in.Breed,
		AgeMonths: in.AgeMonths,
		WeightKg:  in.WeightKg,
		ClientID:  in.ClientID,
		FeedID:    in.FeedID,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if err := s.repo.Create(ctx, l); err != nil {
		return Livestock{}, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Livestock, error) {
	if err := validation.Struct(in); err != nil {
		return Livestock{}, err
	}
	if in.Tag != nil {
		v := NormalizeTag(*in.Tag)
		if v == "" {
			return Livestock{}, errs.Validation("tag", "tag is required")
		}
		in.Tag = &v
	}
	if in.ClientID != nil {
		v := strings.TrimSpace(*in.ClientID)
		if v == "" {
			return Livestock{}, errs.Validation("clientId", "clientId is required")
		}
		in.ClientID = &v
	}
	if in.FeedID != nil {
		v := strings.TrimSpace(*in.FeedID)
		if v == "" {
			return Livestock{}, errs.Validation("feedId", "feedId is required")
		}
		in.FeedID = &v
	}

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return Livestock{}, err
	}

	if s.refs != nil && (in.ClientID != nil || in.FeedID != nil) {
		if err := s.refs.ValidateLivestockRefs(ctx, in.ClientID, in.FeedID); err != nil {
			return Livestock{}, err
		}
	}

	if in.Tag != nil {
		l.Tag = *in.Tag
	}
	if in.Breed != nil {
		l.Breed = *in.Breed
	}
	if in.AgeMonths != nil {
		l.AgeMonths = *in.AgeMonths
	}
	if in.WeightKg != nil {
		l.WeightKg = *in.WeightKg
	}
	if in.ClientID != nil {
		l.ClientID = *in.ClientID
	}
	if in.FeedID != nil {
		l.FeedID = *in.FeedID
	}
	l.UpdatedAt = s.now()
	l = Reconcile(l)

	if err := s.repo.Update(ctx, l); err != nil {
		return Livestock{}, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Livestock, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Livestock{}, errs.NotFound(errs.EntityLivestock)
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Livestock{}, err
	}
	return Reconcile(l), nil
}

func (s *Service) GetByTag(ctx context.Context, tag string) (Livestock, error) {
	tag = NormalizeTag(tag)
	if tag == "" {
		return Livestock{}, errs.NotFound(errs.EntityLivestock)
	}
	l, err := s.repo.GetByTag(ctx, tag)
	if err != nil {
		return Livestock{}, err
	}
	return Reconcile(l), nil
}

// List devuelve los porcinos que cumplen f, más recientes primero.
func (s *Service) List(ctx context.Context, f Filter) ([]Livestock, error) {
	if f.Breed != 0 && !f.Breed.Valid() {
		return nil, errs.Validation("breed", "breed must be one of: 1 2 3")
	}
	f.ClientID = strings.TrimSpace(f.ClientID)
	f.FeedID = strings.TrimSpace(f.FeedID)

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = Reconcile(items[i])
	}
	return items, nil
}

// Delete no tiene dependientes que verificar.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NotFound(errs.EntityLivestock)
	}
	return s.repo.Delete(ctx, id)
}
