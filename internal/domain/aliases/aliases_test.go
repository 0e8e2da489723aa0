package aliases

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestCanonicalize_LegacyKeysMapped(t *testing.T) {
	var dst struct {
		DisplayName string `json:"displayName"`
		GivenNames  string `json:"givenNames"`
		Phone       string `json:"phone"`
		Cedula      string `json:"cedula"`
	}
	err := Decode(Client, raw(t, `{"nombre":"Ana Perez","nombres":"Ana","telefono":"555","cedula":"1"}`), &dst)
	require.NoError(t, err)

	assert.Equal(t, "Ana Perez", dst.DisplayName)
	assert.Equal(t, "Ana", dst.GivenNames)
	assert.Equal(t, "555", dst.Phone)
	assert.Equal(t, "1", dst.Cedula)
}

func TestCanonicalize_CanonicalWins(t *testing.T) {
	out := Canonicalize(Feed, raw(t, `{"description":"maiz","tipoComida":"trigo","foodType":"avena"}`))
	assert.JSONEq(t, `"maiz"`, string(out["description"]))
	assert.NotContains(t, out, "tipoComida")
	assert.NotContains(t, out, "foodType")
}

func TestCanonicalize_NewestLegacyWins(t *testing.T) {
	out := Canonicalize(Feed, raw(t, `{"descripcion":"v1","tipoComida":"v2","foodType":"v3"}`))
	assert.JSONEq(t, `"v3"`, string(out["description"]))
}

func TestTable_EveryLegacyKeyHasCanonical(t *testing.T) {
	for _, e := range []Entity{Client, Feed, Livestock} {
		for _, m := range Table(e) {
			assert.NotEmpty(t, m.Canonical, "%s.%s", e, m.Legacy)
			assert.NotEqual(t, m.Legacy, m.Canonical)
			assert.LessOrEqual(t, m.Since, Version)
		}
	}
	assert.Equal(t, "feedId", CanonicalName(Livestock, "alimentacionId"))
	assert.Equal(t, "weightKg", CanonicalName(Livestock, "weightKg"))
}
