// Package respond escribe las respuestas REST con el envelope común, mapea los
// errores de dominio a códigos HTTP y decodifica bodies con nombres heredados.
package respond

import (
	"encoding/json"
	"net/http"

	"farm-records/internal/domain/aliases"
	"farm-records/internal/domain/errs"
	"farm-records/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Envelope es la forma única de todas las respuestas JSON.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

// StatusOf mapea la taxonomía de errores a un código HTTP.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindConflict, errs.KindHasDependents, errs.KindReferenceNotFound:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error escribe err como respuesta. Los errores sin clasificar se loguean con
// detalle y el cliente solo ve un mensaje genérico.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		if log != nil {
			log.Error("unhandled error", map[string]any{
				"err":        err,
				"method":     r.Method,
				"path":       r.URL.Path,
				"request_id": chimw.GetReqID(r.Context()),
			})
		}
		Fail(w, status, "internal error")
		return
	}
	Fail(w, status, err.Error())
}

// DecodeCanonical lee el body como objeto JSON, traduce claves heredadas y
// decodifica en dst.
func DecodeCanonical(r *http.Request, entity aliases.Entity, dst any) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return errs.Validation("", "invalid json")
	}
	if err := aliases.Decode(entity, raw, dst); err != nil {
		return errs.Validation("", "invalid field type: "+err.Error())
	}
	return nil
}
