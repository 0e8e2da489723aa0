package feeds

import (
	"net/http"
	"time"

	"farm-records/internal/domain/aliases"
	"farm-records/internal/platform/logger"
	"farm-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el CRUD sobre r (ya montado en /api/feed).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/", createFeedHandler(svc, log))
	r.Get("/", listFeedsHandler(svc, log))
	r.Get("/{id}", getFeedHandler(svc, log))
	r.Put("/{id}", updateFeedHandler(svc, log))
	r.Delete("/{id}", deleteFeedHandler(svc, log))
}

// Response expone description y, por compatibilidad, foodType (mismo valor).
type Response struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	FoodType    string    `json:"foodType"`
	Brand       string    `json:"brand"`
	Quantity    float64   `json:"quantity"`
	Price       float64   `json:"price"`
	Dose        string    `json:"dose"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToResponse(f Feed) Response {
	f = Reconcile(f)
	return Response{
		ID:          f.ID,
		Description: f.Description,
		FoodType:    f.FoodType,
		Brand:       f.Brand,
		Quantity:    f.Quantity,
		Price:       f.Price,
		Dose:        f.Dose,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// @Summary  Crear alimentación
// @Tags     feed
// @Accept   json
// @Produce  json
// @Param    body body CreateInput true "alimentación (acepta tipoComida/foodType/descripcion)"
// @Success  201 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Router   /api/feed [post]
func createFeedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := respond.DecodeCanonical(r, aliases.Feed, &in); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		f, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusCreated, "feed created", ToResponse(f))
	}
}

// @Summary  Listar alimentaciones
// @Tags     feed
// @Produce  json
// @Success  200 {object} respond.Envelope
// @Router   /api/feed [get]
func listFeedsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]Response, 0, len(items))
		for _, f := range items {
			out = append(out, ToResponse(f))
		}
		respond.OK(w, http.StatusOK, "", out)
	}
}

// @Summary  Obtener alimentación
// @Tags     feed
// @Produce  json
// @Param    id path string true "id"
// @Success  200 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/feed/{id} [get]
func getFeedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "", ToResponse(f))
	}
}

// @Summary  Actualizar alimentación (parcial)
// @Tags     feed
// @Accept   json
// @Produce  json
// @Param    id   path string      true "id"
// @Param    body body UpdateInput true "campos a cambiar"
// @Success  200 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/feed/{id} [put]
func updateFeedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := respond.DecodeCanonical(r, aliases.Feed, &in); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		f, err := svc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "feed updated", ToResponse(f))
	}
}

// @Summary  Eliminar alimentación (400 si está en uso)
// @Tags     feed
// @Produce  json
// @Param    id path string true "id"
// @Success  200 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/feed/{id} [delete]
func deleteFeedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "feed deleted", nil)
	}
}
