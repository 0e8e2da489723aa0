package clients

import (
	"context"
	"strings"
	"time"

	"farm-records/internal/domain/errs"
	"farm-records/internal/platform/validation"

	"github.com/google/uuid"
)

// DeleteGuard bloquea el borrado mientras haya porcinos que referencian al cliente.
type DeleteGuard interface {
	GuardDeleteClient(ctx context.Context, clientID string) error
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
	Cedula      string `json:"cedula"`
	GivenNames  string `json:"givenNames"`
	Surnames    string `json:"surnames"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	City        string `json:"city"`
}

// UpdateInput usa punteros: nil = no tocar.
type UpdateInput struct {
	Cedula      *string `json:"cedula"`
	GivenNames  *string `json:"givenNames"`
	Surnames    *string `json:"surnames"`
	DisplayName *string `json:"displayName"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Client, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return Client{}, err
	}

	now := s.now()
	c := Reconcile(Client{
		ID:          uuid.NewString(),
		Cedula:      in.Cedula,
		GivenNames:  in.GivenNames,
		Surnames:    in.Surnames,
		DisplayName: in.DisplayName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		City:        in.City,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err := validateIdentity(c); err != nil {
		return Client{}, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Client, error) {
	if in.Email != nil {
		v := strings.TrimSpace(*in.Email)
		in.Email = &v
		if v != "" {
			if err := validation.Var(v, "email", "email"); err != nil {
				return Client{}, err
			}
		}
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	c := applyUpdate(current, in)
	c.UpdatedAt = s.now()
	c = Reconcile(c)
	if err := validateIdentity(c); err != nil {
		return Client{}, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

// applyUpdate aplica los campos presentes. Si cambia solo una de las dos
// representaciones del nombre, la otra se limpia para que Reconcile la derive de nuevo.
func applyUpdate(c Client, in UpdateInput) Client {
	nameParts := in.GivenNames != nil || in.Surnames != nil
	switch {
	case in.DisplayName != nil && !nameParts:
		c.DisplayName = *in.DisplayName
		c.GivenNames, c.Surnames = "", ""
	case nameParts && in.DisplayName == nil:
		if in.GivenNames != nil {
			c.GivenNames = *in.GivenNames
		}
		if in.Surnames != nil {
			c.Surnames = *in.Surnames
		}
		c.DisplayName = ""
	case nameParts:
		c.DisplayName = *in.DisplayName
		if in.GivenNames != nil {
			c.GivenNames = *in.GivenNames
		}
		if in.Surnames != nil {
			c.Surnames = *in.Surnames
		}
	}

	setIf(&c.Cedula, in.Cedula)
	setIf(&c.Phone, in.Phone)
	setIf(&c.Email, in.Email)
	setIf(&c.Address, in.Address)
	setIf(&c.City, in.City)
	return c
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func validateIdentity(c Client) error {
	if c.DisplayName == "" && c.GivenNames == "" && c.Cedula == "" {
		return errs.Validation("displayName", "at least one of displayName, givenNames or cedula is required")
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Client{}, errs.NotFound(errs.EntityClient)
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}
	return Reconcile(c), nil
}

func (s *Service) GetByCedula(ctx context.Context, cedula string) (Client, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return Client{}, errs.NotFound(errs.EntityClient)
	}
	c, err := s.repo.GetByCedula(ctx, cedula)
	if err != nil {
		return Client{}, err
	}
	return Reconcile(c), nil
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = Reconcile(items[i])
	}
	return items, nil
}

// Delete verifica dependientes antes de borrar; nunca borra en cascada.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NotFound(errs.EntityClient)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if s.guard != nil {
		if err := s.guard.GuardDeleteClient(ctx, id); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}
