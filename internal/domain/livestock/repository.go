package livestock

import "context"

type Repository interface {
	Create(ctx context.Context, l Livestock) error
	Update(ctx context.Context, l Livestock) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Livestock, error)
	GetByTag(ctx context.Context, tag string) (Livestock, error)
	List(ctx context.Context, f Filter) ([]Livestock, error)

	CountByClient(ctx context.Context, clientID string) (int, error)
	CountByFeed(ctx context.Context, feedID string) (int, error)
}
