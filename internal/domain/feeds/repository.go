package feeds

import "context"

type Repository interface {
	Create(ctx context.Context, f Feed) error
	Update(ctx context.Context, f Feed) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Feed, error)
	List(ctx context.Context) ([]Feed, error)
	Exists(ctx context.Context, id string) (bool, error)
}
