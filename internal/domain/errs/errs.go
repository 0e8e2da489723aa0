// Package errs define la taxonomía de errores compartida por servicios,
// adapters de storage y las superficies REST/GraphQL.
package errs

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de dominio.
type Kind string

const (
	KindValidation        Kind = "validation_failed"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindHasDependents     Kind = "has_dependents"
	KindReferenceNotFound Kind = "reference_not_found"
)

// Entity nombra la entidad involucrada (para mensajes y referencias).
type Entity string

const (
	EntityClient    Entity = "client"
	EntityFeed      Entity = "feed"
	EntityLivestock Entity = "livestock"
)

// Error es el error tipado del dominio.
type Error struct {
	Kind    Kind
	Entity  Entity
	Field   string
	Count   int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is permite errors.Is(err, errs.ErrNotFound) y similares comparando solo Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Entity == "" && t.Field == "" && t.Message == ""
}

// Sentinels para errors.Is.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrHasDependents     = &Error{Kind: KindHasDependents}
	ErrReferenceNotFound = &Error{Kind: KindReferenceNotFound}
)

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

func NotFound(entity Entity) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: string(entity) + " not found"}
}

// Conflict reporta colisión de un campo único (cedula, tag).
func Conflict(entity Entity, field string) *Error {
	return &Error{
		Kind:    KindConflict,
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("%s with this %s is already registered", entity, field),
	}
}

// HasDependents bloquea un delete mientras existan porcinos que referencian al registro.
func HasDependents(entity Entity, count int) *Error {
	return &Error{
		Kind:    KindHasDependents,
		Entity:  entity,
		Count:   count,
		Message: fmt.Sprintf("cannot delete %s: %d livestock record(s) still reference it", entity, count),
	}
}

func ReferenceNotFound(entity Entity) *Error {
	return &Error{
		Kind:    KindReferenceNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("referenced %s does not exist", entity),
	}
}

// KindOf devuelve el Kind de err, o "" si no es un error de dominio.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// As es un atajo sobre errors.As para *Error.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
