package graphql

import (
	"context"
	"time"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/domain/ref"
	"farm-records/internal/domain/reports"

	graphql "github.com/graph-gophers/graphql-go"
)

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

type clientResolver struct {
	root *Resolver
	c    clients.Client
}

func (r *clientResolver) ID() graphql.ID      { return graphql.ID(r.c.ID) }
func (r *clientResolver) Cedula() string      { return r.c.Cedula }
func (r *clientResolver) GivenNames() string  { return r.c.GivenNames }
func (r *clientResolver) Surnames() string    { return r.c.Surnames }
func (r *clientResolver) DisplayName() string { return r.c.DisplayName }
func (r *clientResolver) Phone() string       { return r.c.Phone }
func (r *clientResolver) Email() string       { return r.c.Email }
func (r *clientResolver) Address() string     { return r.c.Address }
func (r *clientResolver) City() string        { return r.c.City }
func (r *clientResolver) CreatedAt() string   { return stamp(r.c.CreatedAt) }
func (r *clientResolver) UpdatedAt() string   { return stamp(r.c.UpdatedAt) }

func (r *clientResolver) Livestock(ctx context.Context) ([]*livestockResolver, error) {
	return r.root.listLivestock(ctx, livestock.Filter{ClientID: r.c.ID})
}

func (r *clientResolver) LivestockCount(ctx context.Context) (int32, error) {
	items, err := r.root.svc.Livestock.List(ctx, livestock.Filter{ClientID: r.c.ID})
	if err != nil {
		return 0, r.root.fail(err)
	}
	return int32(len(items)), nil
}

type feedResolver struct {
	root *Resolver
	f    feeds.Feed
}

func (r *feedResolver) ID() graphql.ID      { return graphql.ID(r.f.ID) }
func (r *feedResolver) Description() string { return r.f.Description }
func (r *feedResolver) FoodType() string    { return r.f.FoodType }
func (r *feedResolver) Brand() string       { return r.f.Brand }
func (r *feedResolver) Quantity() float64   { return r.f.Quantity }
func (r *feedResolver) Price() float64      { return r.f.Price }
func (r *feedResolver) Dose() string        { return r.f.Dose }
func (r *feedResolver) CreatedAt() string   { return stamp(r.f.CreatedAt) }
func (r *feedResolver) UpdatedAt() string   { return stamp(r.f.UpdatedAt) }

func (r *feedResolver) Livestock(ctx context.Context) ([]*livestockResolver, error) {
	return r.root.listLivestock(ctx, livestock.Filter{FeedID: r.f.ID})
}

type livestockResolver struct {
	root *Resolver
	l    livestock.Livestock
	// feed ya resuelto por el padre (reportes); evita otra consulta.
	feed ref.Ref[feeds.Feed]
}

func (r *livestockResolver) ID() graphql.ID       { return graphql.ID(r.l.ID) }
func (r *livestockResolver) Tag() string          { return r.l.Tag }
func (r *livestockResolver) Breed() int32         { return int32(r.l.Breed) }
func (r *livestockResolver) BreedLabel() string   { return r.l.Breed.Label() }
func (r *livestockResolver) AgeMonths() int32     { return int32(r.l.AgeMonths) }
func (r *livestockResolver) WeightKg() float64    { return r.l.WeightKg }
func (r *livestockResolver) ClientID() graphql.ID { return graphql.ID(r.l.ClientID) }
func (r *livestockResolver) FeedID() graphql.ID   { return graphql.ID(r.l.FeedID) }
func (r *livestockResolver) CreatedAt() string    { return stamp(r.l.CreatedAt) }
func (r *livestockResolver) UpdatedAt() string    { return stamp(r.l.UpdatedAt) }

// Client devuelve null si la referencia está colgada.
func (r *livestockResolver) Client(ctx context.Context) (*clientResolver, error) {
	cr, ok, err := ref.Resolve(ctx, ref.Unresolved[clients.Client](r.l.ClientID), r.root.svc.Clients.GetByID)
	if err != nil || !ok {
		return nil, r.root.optional(err)
	}
	c, _ := cr.Entity()
	return &clientResolver{root: r.root, c: c}, nil
}

// Feed devuelve null si la referencia está colgada.
func (r *livestockResolver) Feed(ctx context.Context) (*feedResolver, error) {
	fr := r.feed
	if fr.ID() == "" {
		fr = ref.Unresolved[feeds.Feed](r.l.FeedID)
	}
	fr, ok, err := ref.Resolve(ctx, fr, r.root.svc.Feeds.GetByID)
	if err != nil || !ok {
		return nil, r.root.optional(err)
	}
	f, _ := fr.Entity()
	return &feedResolver{root: r.root, f: f}, nil
}

type breedStatResolver struct {
	s reports.BreedStat
}

func (r *breedStatResolver) Breed() int32           { return int32(r.s.Breed) }
func (r *breedStatResolver) BreedLabel() string     { return r.s.Label }
func (r *breedStatResolver) Count() int32           { return int32(r.s.Count) }
func (r *breedStatResolver) AverageWeight() float64 { return r.s.AverageWeight }
func (r *breedStatResolver) AverageAge() float64    { return r.s.AverageAge }

type breedStatisticsResolver struct {
	st reports.BreedStatistics
}

func (r *breedStatisticsResolver) TotalCount() int32 { return int32(r.st.TotalCount) }

func (r *breedStatisticsResolver) Breeds() []*breedStatResolver {
	out := make([]*breedStatResolver, 0, len(r.st.Breeds))
	for _, b := range r.st.Breeds {
		out = append(out, &breedStatResolver{s: b})
	}
	return out
}

type clientWithLivestockResolver struct {
	root *Resolver
	it   reports.ClientLivestockCount
}

func (r *clientWithLivestockResolver) Client() *clientResolver {
	return &clientResolver{root: r.root, c: r.it.Client}
}

func (r *clientWithLivestockResolver) LivestockCount() int32 { return int32(r.it.LivestockCount) }

type clientReportResolver struct {
	root *Resolver
	rep  reports.ClientReport
}

func (r *clientReportResolver) Client() *clientResolver {
	return &clientResolver{root: r.root, c: r.rep.Client}
}

func (r *clientReportResolver) Livestock() []*livestockResolver {
	out := make([]*livestockResolver, 0, len(r.rep.Livestock))
	for _, e := range r.rep.Livestock {
		out = append(out, &livestockResolver{root: r.root, l: e.Livestock, feed: e.Feed})
	}
	return out
}

func (r *clientReportResolver) TotalCount() int32    { return int32(r.rep.TotalCount) }
func (r *clientReportResolver) TotalWeight() float64 { return r.rep.TotalWeight }
