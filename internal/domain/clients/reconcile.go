package clients

import "strings"

// Reconcile devuelve la forma canónica de c. Es pura e idempotente; se aplica
// antes de persistir y antes de devolver un cliente.
//
//   - sin DisplayName pero con nombres/apellidos: DisplayName = nombres + " " + apellidos
//   - con DisplayName y sin ninguna de las partes: se divide en el primer espacio
func Reconcile(c Client) Client {
	c.ID = strings.TrimSpace(c.ID)
	c.Cedula = strings.TrimSpace(c.Cedula)
	c.GivenNames = collapseSpaces(c.GivenNames)
	c.Surnames = collapseSpaces(c.Surnames)
	c.DisplayName = collapseSpaces(c.DisplayName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Address = strings.TrimSpace(c.Address)
	c.City = strings.TrimSpace(c.City)

	hasParts := c.GivenNames != "" || c.Surnames != ""

	switch {
	case c.DisplayName == "" && hasParts:
		c.DisplayName = JoinName(c.GivenNames, c.Surnames)
	case c.DisplayName != "" && !hasParts:
		c.GivenNames, c.Surnames = SplitName(c.DisplayName)
	}
	return c
}

// JoinName arma el nombre combinado.
func JoinName(given, surnames string) string {
	return strings.TrimSpace(given + " " + surnames)
}

// SplitName separa en el primer tramo de espacios: antes → nombres, resto → apellidos.
func SplitName(display string) (string, string) {
	display = collapseSpaces(display)
	given, rest, _ := strings.Cut(display, " ")
	return given, rest
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
