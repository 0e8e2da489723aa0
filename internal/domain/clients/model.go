package clients

import "time"

// Client es un cliente de la granja. DisplayName y GivenNames/Surnames son dos
// representaciones del mismo nombre; Reconcile mantiene ambas derivables.
type Client struct {
	ID string

	// Cedula es el documento nacional; único cuando no está vacío.
	Cedula string

	GivenNames  string
	Surnames    string
	DisplayName string

	Phone   string
	Email   string
	Address string
	City    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
