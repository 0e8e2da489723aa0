package reports

import (
	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/domain/ref"
)

// Entry es un porcino con su alimentación. Feed queda sin resolver si la
// referencia está colgada.
type Entry struct {
	Livestock livestock.Livestock
	Feed      ref.Ref[feeds.Feed]
}

type ClientReport struct {
	Client      clients.Client
	Livestock   []Entry
	TotalCount  int
	TotalWeight float64
}

type Summary struct {
	ClientCount    int
	LivestockCount int
	TotalWeightAll float64
}

type GeneralReport struct {
	Clients []ClientReport
	Summary Summary
}

type BreedStat struct {
	Breed         livestock.Breed
	Label         string
	Count         int
	AverageWeight float64
	AverageAge    float64
}

// BreedStatistics lista solo razas con al menos un porcino, ordenadas por código.
type BreedStatistics struct {
	TotalCount int
	Breeds     []BreedStat
}

type ClientLivestockCount struct {
	Client         clients.Client
	LivestockCount int
}
