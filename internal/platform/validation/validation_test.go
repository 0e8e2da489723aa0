package validation

import (
	"testing"

	"farm-records/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Tag   string  `json:"tag" validate:"required"`
	Breed int     `json:"breed" validate:"oneof=1 2 3"`
	Email string  `json:"email" validate:"omitempty,email"`
	Kg    float64 `json:"weightKg" validate:"gt=0,lte=500"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{Tag: "A1", Breed: 2, Kg: 10}))

	err := Struct(sample{Breed: 1, Kg: 1})
	e, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, errs.KindValidation, e.Kind)
	assert.Equal(t, "tag", e.Field)
	assert.Equal(t, "tag is required", e.Message)

	e, _ = errs.As(Struct(sample{Tag: "x", Breed: 4, Kg: 1}))
	assert.Equal(t, "breed", e.Field)
	assert.Contains(t, e.Message, "one of")

	e, _ = errs.As(Struct(sample{Tag: "x", Breed: 1, Kg: 0}))
	assert.Equal(t, "weightKg", e.Field)

	e, _ = errs.As(Struct(sample{Tag: "x", Breed: 1, Kg: 2, Email: "nope"}))
	assert.Equal(t, "email", e.Field)
}

func TestVar(t *testing.T) {
	require.NoError(t, Var("ana@granja.com", "email", "email"))

	e, ok := errs.As(Var("nope", "email", "email"))
	require.True(t, ok)
	assert.Equal(t, "email", e.Field)
	assert.Equal(t, "email must be a valid email", e.Message)
}
