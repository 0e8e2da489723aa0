package graphql

import (
	"context"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"

	graphql "github.com/graph-gophers/graphql-go"
)

type clientInput struct {
	Cedula      *string
	GivenNames  *string
	Surnames    *string
	DisplayName *string
	Phone       *string
	Email       *string
	Address     *string
	City        *string
}

type feedInput struct {
	Description *string
	FoodType    *string
	Brand       *string
	Quantity    *float64
	Price       *float64
	Dose        *string
}

// description canónico; foodType solo si no vino description.
func (in feedInput) description() *string {
	if in.Description != nil {
		return in.Description
	}
	return in.FoodType
}

type livestockInput struct {
	Tag       *string
	Breed     *int32
	AgeMonths *int32
	WeightKg  *float64
	ClientID  *graphql.ID
	FeedID    *graphql.ID
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func idPtr(p *graphql.ID) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

func (r *Resolver) CreateClient(ctx context.Context, args struct{ Input clientInput }) (*clientResolver, error) {
	in := args.Input
	c, err := r.svc.Clients.Create(ctx, clients.CreateInput{
		Cedula:      deref(in.Cedula),
		GivenNames:  deref(in.GivenNames),
		Surnames:    deref(in.Surnames),
		DisplayName: deref(in.DisplayName),
		Phone:       deref(in.Phone),
		Email:       deref(in.Email),
		Address:     deref(in.Address),
		City:        deref(in.City),
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return &clientResolver{root: r, c: c}, nil
}

func (r *Resolver) UpdateClient(ctx context.Context, args struct {
	ID    graphql.ID
	Input clientInput
}) (*clientResolver, error) {
	in := args.Input
	c, err := r.svc.Clients.Update(ctx, string(args.ID), clients.UpdateInput{
		Cedula:      in.Cedula,
		GivenNames:  in.GivenNames,
		Surnames:    in.Surnames,
		DisplayName: in.DisplayName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		City:        in.City,
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return &clientResolver{root: r, c: c}, nil
}

func (r *Resolver) DeleteClient(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.svc.Clients.Delete(ctx, string(args.ID)); err != nil {
		return false, r.fail(err)
	}
	return true, nil
}

func (r *Resolver) CreateFeed(ctx context.Context, args struct{ Input feedInput }) (*feedResolver, error) {
	in := args.Input
	f, err := r.svc.Feeds.Create(ctx, feeds.CreateInput{
		Description: deref(in.description()),
		Brand:       deref(in.Brand),
		Quantity:    deref(in.Quantity),
		Price:       deref(in.Price),
		Dose:        deref(in.Dose),
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return &feedResolver{root: r, f: f}, nil
}

func (r *Resolver) UpdateFeed(ctx context.Context, args struct {
	ID    graphql.ID
	Input feedInput
}) (*feedResolver, error) {
	in := args.Input
	f, err := r.svc.Feeds.Update(ctx, string(args.ID), feeds.UpdateInput{
		Description: in.description(),
		Brand:       in.Brand,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Dose:        in.Dose,
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return &feedResolver{root: r, f: f}, nil
}

func (r *Resolver) DeleteFeed(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.svc.Feeds.Delete(ctx, string(args.ID)); err != nil {
		return false, r.fail(err)
	}
	return true, nil
}

func (r *Resolver) CreateLivestock(ctx context.Context, args struct{ Input livestockInput }) (*livestockResolver, error) {
	in := args.Input
	l, err := r.svc.Livestock.Create(ctx, livestock.CreateInput{
		Tag:       deref(in.Tag),
		Breed:     livestock.Breed(deref(in.Breed)),
		AgeMonths: int(deref(in.AgeMonths)),
		WeightKg:  deref(in.WeightKg),
		ClientID:  deref(idPtr(in.ClientID)),
		FeedID:    deref(idPtr(in.FeedID)),
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return &livestockResolver{root: r, l: l}, nil
}

func (r *Resolver) UpdateLivestock(ctx context.Context, args struct {
	ID    graphql.ID
	Input livestockInput
}) (*livestockResolver, error) {
	in := args.Input
	upd := livestock.UpdateInput{
		Tag:      in.Tag,
		WeightKg: in.WeightKg,
		ClientID: idPtr(in.ClientID),
		FeedID:   idPtr(in.FeedID),
	}
	if in.Breed != nil {
		b := livestock.Breed(*in.Breed)
		upd.Breed = &b
	}
	if in.AgeMonths != nil {
		a := int(*in.AgeMonths)
		upd.AgeMonths = &a
	}
	l, err := r.svc.Livestock.Update(ctx, string(args.ID), upd)
	if err != nil {
		return nil, r.fail(err)
	}
	return &livestockResolver{root: r, l: l}, nil
}

func (r *Resolver) DeleteLivestock(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.svc.Livestock.Delete(ctx, string(args.ID)); err != nil {
		return false, r.fail(err)
	}
	return true, nil
}
