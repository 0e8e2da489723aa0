package feeds

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reconcile devuelve la forma canónica de f (lectura y escritura). Pura e idempotente.
func Reconcile(f Feed) Feed {
	f.ID = strings.TrimSpace(f.ID)
	f.Description = strings.TrimSpace(f.Description)
	f.FoodType = strings.TrimSpace(f.FoodType)
	f.Brand = strings.TrimSpace(f.Brand)
	f.Dose = strings.TrimSpace(f.Dose)

	if f.Description == "" {
		f.Description = f.FoodType
	}
	f.FoodType = f.Description

	if f.Description != "" && f.Brand == "" {
		f.Brand = UnspecifiedBrand
	}
	return f
}

// PrepareWrite es Reconcile más las normalizaciones que solo aplican al guardar.
func PrepareWrite(f Feed) Feed {
	f = Reconcile(f)
	f.Description = capitalizeFirst(f.Description)
	f.FoodType = f.Description
	return f
}

// CanonicalDescription devuelve la descripción tras reconciliar.
func CanonicalDescription(f Feed) string {
	return Reconcile(f).Description
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
