// Package aliases contiene la tabla versionada de compatibilidad entre nombres
// de campo heredados y canónicos. Solo se consulta en el borde (decodificación
// de payloads y backfill); el resto del código trabaja con la forma canónica.
package aliases

import (
	"encoding/json"
	"fmt"
	"sort"
)

type Entity string

const (
	Client    Entity = "client"
	Feed      Entity = "feed"
	Livestock Entity = "livestock"
)

// Mapping asocia un nombre heredado a su campo canónico.
type Mapping struct {
	Entity    Entity
	Legacy    string
	Canonical string
	// Since indica la versión del esquema en que el nombre pasó a ser heredado.
	Since int
}

// Version es la versión actual de la tabla.
const Version = 3

var table = []Mapping{
	// v1: esquema original en español.
	{Client, "nombres", "givenNames", 1},
	{Client, "apellidos", "surnames", 1},
	{Client, "telefono", "phone", 1},
	{Client, "direccion", "address", 1},
	{Client, "ciudad", "city", 1},
	{Client, "correo", "email", 1},
	{Feed, "descripcion", "description", 1},
	{Feed, "dosis", "dose", 1},
	{Livestock, "identificacion", "tag", 1},
	{Livestock, "raza", "breed", 1},
	{Livestock, "edad", "ageMonths", 1},
	{Livestock, "peso", "weightKg", 1},
	{Livestock, "clienteId", "clientId", 1},
	{Livestock, "alimentacionId", "feedId", 1},

	// v2: esquema GraphQL (nombre combinado, tipoComida/marca/cantidad/precio).
	{Client, "nombre", "displayName", 2},
	{Feed, "tipoComida", "description", 2},
	{Feed, "marca", "brand", 2},
	{Feed, "cantidad", "quantity", 2},
	{Feed, "precio", "price", 2},

	// v3: nombres en inglés intermedios.
	{Client, "name", "displayName", 3},
	{Client, "fullName", "displayName", 3},
	{Feed, "foodType", "description", 3},
}

// Table devuelve una copia de la tabla para una entidad, ordenada por versión.
func Table(entity Entity) []Mapping {
	out := make([]Mapping, 0)
	for _, m := range table {
		if m.Entity == entity {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Since < out[j].Since })
	return out
}

// CanonicalName devuelve el nombre canónico de key (o key si no es heredado).
func CanonicalName(entity Entity, key string) string {
	for _, m := range table {
		if m.Entity == entity && m.Legacy == key {
			return m.Canonical
		}
	}
	return key
}

// Canonicalize reescribe las claves heredadas de raw a sus nombres canónicos.
// Si el payload trae la clave canónica y una heredada, gana la canónica; entre
// dos heredadas gana la de versión más reciente.
func Canonicalize(entity Entity, raw map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(raw))
	since := map[string]int{}

	for k, v := range raw {
		if CanonicalName(entity, k) == k {
			out[k] = v
		}
	}

	for _, m := range Table(entity) {
		v, ok := raw[m.Legacy]
		if !ok {
			continue
		}
		if _, direct := raw[m.Canonical]; direct {
			continue
		}
		if prev, seen := since[m.Canonical]; seen && prev > m.Since {
			continue
		}
		since[m.Canonical] = m.Since
		out[m.Canonical] = v
	}
	return out
}

// Decode canonicaliza raw y lo decodifica en dst (struct con tags canónicos).
func Decode(entity Entity, raw map[string]json.RawMessage, dst any) error {
	b, err := json.Marshal(Canonicalize(entity, raw))
	if err != nil {
		return fmt.Errorf("re-encode payload: %w", err)
	}
	return json.Unmarshal(b, dst)
}
