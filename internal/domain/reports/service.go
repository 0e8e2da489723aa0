// Package reports arma las vistas de solo lectura: reporte por cliente,
// reporte general, estadísticas por raza y el PDF por cliente.
package reports

import (
	"context"
	"sort"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/domain/ref"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ClientSource interface {
	GetByCedula(ctx context.Context, cedula string) (clients.Client, error)
	List(ctx context.Context) ([]clients.Client, error)
}

type LivestockSource interface {
	List(ctx context.Context, f livestock.Filter) ([]livestock.Livestock, error)
}

type FeedSource interface {
	GetByID(ctx context.Context, id string) (feeds.Feed, error)
	List(ctx context.Context) ([]feeds.Feed, error)
}

type Service struct {
	clients   ClientSource
	livestock LivestockSource
	feeds     FeedSource
}

func NewService(c ClientSource, l LivestockSource, f FeedSource) *Service {
	return &Service{clients: c, livestock: l, feeds: f}
}

// ForClient busca el cliente por cédula. Sin porcinos devuelve totales en cero, no error.
func (s *Service) ForClient(ctx context.Context, cedula string) (ClientReport, error) {
	c, err := s.clients.GetByCedula(ctx, cedula)
	if err != nil {
		return ClientReport{}, err
	}
	items, err := s.livestock.List(ctx, livestock.Filter{ClientID: c.ID})
	if err != nil {
		return ClientReport{}, err
	}

	// Cada alimentación se carga una vez aunque la usen varios porcinos.
	cache := map[string]ref.Ref[feeds.Feed]{}
	entries := make([]Entry, 0, len(items))
	for _, l := range items {
		fr, ok := cache[l.FeedID]
		if !ok {
			fr, _, err = ref.Resolve(ctx, ref.Unresolved[feeds.Feed](l.FeedID), s.feeds.GetByID)
			if err != nil {
				return ClientReport{}, err
			}
			cache[l.FeedID] = fr
		}
		entries = append(entries, Entry{Livestock: l, Feed: fr})
	}
	return buildClientReport(c, entries), nil
}

// General carga todo en paralelo y agrupa los porcinos por cliente una sola vez.
func (s *Service) General(ctx context.Context) (GeneralReport, error) {
	var (
		allClients []clients.Client
		allPigs    []livestock.Livestock
		allFeeds   []feeds.Feed
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		allClients, err = s.clients.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allPigs, err = s.livestock.List(gctx, livestock.Filter{})
		return err
	})
	g.Go(func() (err error) {
		allFeeds, err = s.feeds.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return GeneralReport{}, err
	}

	feedByID := make(map[string]feeds.Feed, len(allFeeds))
	for _, f := range allFeeds {
		feedByID[f.ID] = f
	}
	byClient := make(map[string][]Entry, len(allClients))
	var totalWeight float64
	for _, l := range allPigs {
		byClient[l.ClientID] = append(byClient[l.ClientID], Entry{Livestock: l, Feed: feedRef(feedByID, l.FeedID)})
		totalWeight += l.WeightKg
	}

	out := GeneralReport{
		Clients: make([]ClientReport, 0, len(allClients)),
		Summary: Summary{
			ClientCount:    len(allClients),
			LivestockCount: len(allPigs),
			TotalWeightAll: totalWeight,
		},
	}
	for _, c := range allClients {
		out.Clients = append(out.Clients, buildClientReport(c, byClient[c.ID]))
	}
	return out, nil
}

// BreedStatistics agrupa por raza; promedios redondeados a 2 decimales (half-up).
func (s *Service) BreedStatistics(ctx context.Context) (BreedStatistics, error) {
	items, err := s.livestock.List(ctx, livestock.Filter{})
	if err != nil {
		return BreedStatistics{}, err
	}
	return computeBreedStatistics(items), nil
}

func computeBreedStatistics(items []livestock.Livestock) BreedStatistics {
	// Sumas en decimal: el promedio de 10.01 y 10.00 debe redondear a 10.01.
	type acc struct {
		count       int
		weight, age decimal.Decimal
	}
	groups := map[livestock.Breed]*acc{}
	for _, l := range items {
		a, ok := groups[l.Breed]
		if !ok {
			a = &acc{}
			groups[l.Breed] = a
		}
		a.count++
		a.weight = a.weight.Add(decimal.NewFromFloat(l.WeightKg))
		a.age = a.age.Add(decimal.NewFromInt(int64(l.AgeMonths)))
	}

	out := BreedStatistics{TotalCount: len(items), Breeds: make([]BreedStat, 0, len(groups))}
	for b, a := range groups {
		out.Breeds = append(out.Breeds, BreedStat{
			Breed:         b,
			Label:         b.Label(),
			Count:         a.count,
			AverageWeight: average2(a.weight, a.count),
			AverageAge:    average2(a.age, a.count),
		})
	}
	sort.Slice(out.Breeds, func(i, j int) bool { return out.Breeds[i].Breed < out.Breeds[j].Breed })
	return out
}

// ClientsWithLivestock devuelve los clientes con al menos un porcino, en el orden del listado de clientes.
func (s *Service) ClientsWithLivestock(ctx context.Context) ([]ClientLivestockCount, error) {
	var (
		allClients []clients.Client
		allPigs    []livestock.Livestock
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		allClients, err = s.clients.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		allPigs, err = s.livestock.List(gctx, livestock.Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(allClients))
	for _, l := range allPigs {
		counts[l.ClientID]++
	}
	out := make([]ClientLivestockCount, 0)
	for _, c := range allClients {
		if n := counts[c.ID]; n > 0 {
			out = append(out, ClientLivestockCount{Client: c, LivestockCount: n})
		}
	}
	return out, nil
}

func buildClientReport(c clients.Client, entries []Entry) ClientReport {
	if entries == nil {
		entries = []Entry{}
	}
	var total float64
	for _, e := range entries {
		total += e.Livestock.WeightKg
	}
	return ClientReport{
		Client:      c,
		Livestock:   entries,
		TotalCount:  len(entries),
		TotalWeight: total,
	}
}

func feedRef(byID map[string]feeds.Feed, id string) ref.Ref[feeds.Feed] {
	if f, ok := byID[id]; ok {
		return ref.Resolved(id, f)
	}
	return ref.Unresolved[feeds.Feed](id)
}

// average2 divide y redondea a 2 decimales, mitad hacia arriba.
func average2(sum decimal.Decimal, n int) float64 {
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2).InexactFloat64()
}
