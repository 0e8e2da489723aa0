package livestock

import "time"

// Breed es el código numérico de raza; la etiqueta nunca se persiste.
type Breed int

const (
	BreedYork      Breed = 1
	BreedHampshire Breed = 2
	BreedDuroc     Breed = 3
)

// Breeds lista los códigos válidos en orden.
var Breeds = []Breed{BreedYork, BreedHampshire, BreedDuroc}

var breedLabels = map[Breed]string{
	BreedYork:      "York",
	BreedHampshire: "Hampshire",
	BreedDuroc:     "Duroc",
}

// Label devuelve el nombre de la raza o "Unknown" para códigos fuera de la tabla.
func (b Breed) Label() string {
	if l, ok := breedLabels[b]; ok {
		return l
	}
	return "Unknown"
}

func (b Breed) Valid() bool {
	_, ok := breedLabels[b]
	return ok
}

// Livestock es un porcino. ClientID y FeedID son referencias no propietarias.
type Livestock struct {
	ID string

	Tag       string
	Breed     Breed
	AgeMonths int
	WeightKg  float64

	ClientID string
	FeedID   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter restringe List. Valores cero = sin filtro.
type Filter struct {
	ClientID string
	FeedID   string
	Breed    Breed
}

// Match indica si l cumple el filtro.
func (f Filter) Match(l Livestock) bool {
	if f.ClientID != "" && l.ClientID != f.ClientID {
		return false
	}
	if f.FeedID != "" && l.FeedID != f.FeedID {
		return false
	}
	if f.Breed != 0 && l.Breed != f.Breed {
		return false
	}
	return true
}
