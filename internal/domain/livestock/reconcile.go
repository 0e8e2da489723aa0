package livestock

import "strings"

// NormalizeTag recorta y pasa a mayúsculas la identificación.
func NormalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}

// Reconcile devuelve la forma canónica. Pura e idempotente.
func Reconcile(l Livestock) Livestock {
	l.ID = strings.TrimSpace(l.ID)
	l.Tag = NormalizeTag(l.Tag)
	l.ClientID = strings.TrimSpace(l.ClientID)
	l.FeedID = strings.TrimSpace(l.FeedID)
	return l
}
