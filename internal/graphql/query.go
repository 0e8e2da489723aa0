package graphql

import (
	"context"

	"farm-records/internal/domain/livestock"

	graphql "github.com/graph-gophers/graphql-go"
)

func (r *Resolver) Clients(ctx context.Context) ([]*clientResolver, error) {
	items, err := r.svc.Clients.List(ctx)
	if err != nil {
		return nil, r.fail(err)
	}
	return r.clientsOf(items), nil
}

func (r *Resolver) Client(ctx context.Context, args struct{ ID graphql.ID }) (*clientResolver, error) {
	c, err := r.svc.Clients.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(err)
	}
	return &clientResolver{root: r, c: c}, nil
}

func (r *Resolver) ClientsWithLivestock(ctx context.Context) ([]*clientWithLivestockResolver, error) {
	items, err := r.svc.Reports.ClientsWithLivestock(ctx)
	if err != nil {
		return nil, r.fail(err)
	}
	out := make([]*clientWithLivestockResolver, 0, len(items))
	for _, it := range items {
		out = append(out, &clientWithLivestockResolver{root: r, it: it})
	}
	return out, nil
}

func (r *Resolver) Livestock(ctx context.Context, args struct {
	ClientID *graphql.ID
	FeedID   *graphql.ID
	Breed    *int32
}) ([]*livestockResolver, error) {
	var f livestock.Filter
	if args.ClientID != nil {
		f.ClientID = string(*args.ClientID)
	}
	if args.FeedID != nil {
		f.FeedID = string(*args.FeedID)
	}
	if args.Breed != nil {
		f.Breed = livestock.Breed(*args.Breed)
	}
	return r.listLivestock(ctx, f)
}

func (r *Resolver) LivestockByID(ctx context.Context, args struct{ ID graphql.ID }) (*livestockResolver, error) {
	l, err := r.svc.Livestock.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(err)
	}
	return &livestockResolver{root: r, l: l}, nil
}

// LivestockByTag devuelve null si no hay porcino con esa identificación.
func (r *Resolver) LivestockByTag(ctx context.Context, args struct{ Tag string }) (*livestockResolver, error) {
	l, err := r.svc.Livestock.GetByTag(ctx, args.Tag)
	if err != nil {
		return nil, r.optional(err)
	}
	return &livestockResolver{root: r, l: l}, nil
}

func (r *Resolver) LivestockByClient(ctx context.Context, args struct{ ClientID graphql.ID }) ([]*livestockResolver, error) {
	return r.listLivestock(ctx, livestock.Filter{ClientID: string(args.ClientID)})
}

func (r *Resolver) LivestockByBreed(ctx context.Context, args struct{ Breed int32 }) ([]*livestockResolver, error) {
	return r.listLivestock(ctx, livestock.Filter{Breed: livestock.Breed(args.Breed)})
}

func (r *Resolver) Feeds(ctx context.Context) ([]*feedResolver, error) {
	items, err := r.svc.Feeds.List(ctx)
	if err != nil {
		return nil, r.fail(err)
	}
	return r.feedsOf(items), nil
}

func (r *Resolver) Feed(ctx context.Context, args struct{ ID graphql.ID }) (*feedResolver, error) {
	f, err := r.svc.Feeds.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(err)
	}
	return &feedResolver{root: r, f: f}, nil
}

func (r *Resolver) BreedStatistics(ctx context.Context) (*breedStatisticsResolver, error) {
	st, err := r.svc.Reports.BreedStatistics(ctx)
	if err != nil {
		return nil, r.fail(err)
	}
	return &breedStatisticsResolver{st: st}, nil
}

func (r *Resolver) ClientReport(ctx context.Context, args struct{ Cedula string }) (*clientReportResolver, error) {
	rep, err := r.svc.Reports.ForClient(ctx, args.Cedula)
	if err != nil {
		return nil, r.fail(err)
	}
	return &clientReportResolver{root: r, rep: rep}, nil
}
