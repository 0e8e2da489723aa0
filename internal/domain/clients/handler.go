package clients

import (
	"net/http"
	"time"

	"farm-records/internal/domain/aliases"
	"farm-records/internal/platform/logger"
	"farm-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el CRUD sobre r (ya montado en /api/clients).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/", createClientHandler(svc, log))
	r.Get("/", listClientsHandler(svc, log))
	r.Get("/{id}", getClientHandler(svc, log))
	r.Put("/{id}", updateClientHandler(svc, log))
	r.Delete("/{id}", deleteClientHandler(svc, log))
}

// Response es la forma pública de un cliente (REST y reportes).
type Response struct {
	ID          string    `json:"id"`
	Cedula      string    `json:"cedula"`
	GivenNames  string    `json:"givenNames"`
	Surnames    string    `json:"surnames"`
	DisplayName string    `json:"displayName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToResponse(c Client) Response {
	c = Reconcile(c)
	return Response{
		ID:          c.ID,
		Cedula:      c.Cedula,
		GivenNames:  c.GivenNames,
		Surnames:    c.Surnames,
		DisplayName: c.DisplayName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		City:        c.City,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// @Summary  Crear cliente
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    body body CreateInput true "cliente (acepta nombres heredados)"
// @Success  201 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Router   /api/clients [post]
func createClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := respond.DecodeCanonical(r, aliases.Client, &in); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		c, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusCreated, "client created", ToResponse(c))
	}
}

// @Summary  Listar clientes (más recientes primero)
// @Tags     clients
// @Produce  json
// @Success  200 {object} respond.Envelope
// @Router   /api/clients [get]
func listClientsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]Response, 0, len(items))
		for _, c := range items {
			out = append(out, ToResponse(c))
		}
		respond.OK(w, http.StatusOK, "", out)
	}
}

// @Summary  Obtener cliente
// @Tags     clients
// @Produce  json
// @Param    id path string true "id"
// @Success  200 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/clients/{id} [get]
func getClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "", ToResponse(c))
	}
}

// @Summary  Actualizar cliente (parcial)
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id   path string      true "id"
// @Param    body body UpdateInput true "campos a cambiar"
// @Success  200 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/clients/{id} [put]
func updateClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := respond.DecodeCanonical(r, aliases.Client, &in); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "client updated", ToResponse(c))
	}
}

// @Summary  Eliminar cliente (400 si tiene porcinos)
// @Tags     clients
// @Produce  json
// @Param    id path string true "id"
// @Success  200 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/clients/{id} [delete]
func deleteClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "client deleted", nil)
	}
}
