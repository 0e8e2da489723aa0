package feeds

import "time"

// UnspecifiedBrand se usa cuando hay descripción pero no marca.
const UnspecifiedBrand = "Sin especificar"

// Feed es un registro de alimentación asignable a varios porcinos.
//
// Description es el campo canónico; FoodType es el nombre histórico del mismo
// dato y siempre se deriva de Description.
type Feed struct {
	ID string

	Description string
	FoodType    string
	Brand       string
	Quantity    float64
	Price       float64
	Dose        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
