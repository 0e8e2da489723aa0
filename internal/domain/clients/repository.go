package clients

import "context"

// Repository persiste clientes. Los adapters devuelven errs.NotFound y
// errs.Conflict (cedula duplicada) de la taxonomía común.
type Repository interface {
	Create(ctx context.Context, c Client) error
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Client, error)
	GetByCedula(ctx context.Context, cedula string) (Client, error)
	// List devuelve los clientes del más reciente al más antiguo.
	List(ctx context.Context) ([]Client, error)
	Exists(ctx context.Context, id string) (bool, error)
}
