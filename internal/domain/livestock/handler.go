package livestock

import (
	"net/http"
	"strconv"
	"time"

	"farm-records/internal/domain/aliases"
	"farm-records/internal/domain/errs"
	"farm-records/internal/platform/logger"
	"farm-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el CRUD sobre r (ya montado en /api/livestock).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/", createLivestockHandler(svc, log))
	r.Get("/", listLivestockHandler(svc, log))
	r.Get("/tag/{tag}", getLivestockByTagHandler(svc, log))
	r.Get("/{id}", getLivestockHandler(svc, log))
	r.Put("/{id}", updateLivestockHandler(svc, log))
	r.Delete("/{id}", deleteLivestockHandler(svc, log))
}

type Response struct {
	ID         string    `json:"id"`
	Tag        string    `json:"tag"`
	Breed      int       `json:"breed"`
	BreedLabel string    `json:"breedLabel"`
	AgeMonths  int       `json:"ageMonths"`
	WeightKg   float64   `json:"weightKg"`
	ClientID   string    `json:"clientId"`
	FeedID     string    `json:"feedId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToResponse(l Livestock) Response {
	l = Reconcile(l)
	return Response{
		ID:         l.ID,
		Tag:        l.Tag,
		Breed:      int(l.Breed),
		BreedLabel: l.Breed.Label(),
		AgeMonths:  l.AgeMonths,
		WeightKg:   l.WeightKg,
		ClientID:   l.ClientID,
		FeedID:     l.FeedID,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// FilterFromQuery lee clientId, feedId y breed de la query string.
func FilterFromQuery(r *http.Request) (Filter, error) {
	q := r.URL.Query()
	f := Filter{
		ClientID: q.Get("clientId"),
		FeedID:   q.Get("feedId"),
	}
	if raw := q.Get("breed"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Filter{}, errs.Validation("breed", "breed must be a number")
		}
		f.Breed = Breed(n)
	}
	return f, nil
}

// @Summary  Crear porcino
// @Tags     livestock
// @Accept   json
// @Produce  json
// @Param    body body CreateInput true "porcino (acepta identificacion/raza/edad/peso/clienteId/alimentacionId)"
// @Success  201 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Router   /api/livestock [post]
func createLivestockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := respond.DecodeCanonical(r, aliases.Livestock, &in); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		l, err := svc.Create(r.Context(), in)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusCreated, "livestock created", ToResponse(l))
	}
}

// @Summary  Listar porcinos
// @Tags     livestock
// @Produce  json
// @Param    clientId query string false "filtrar por cliente"
// @Param    feedId   query string false "filtrar por alimentación"
// @Param    breed    query int    false "filtrar por raza (1,2,3)"
// @Success  200 {object} respond.Envelope
// @Router   /api/livestock [get]
func listLivestockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := FilterFromQuery(r)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		items, err := svc.List(r.Context(), f)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]Response, 0, len(items))
		for _, l := range items {
			out = append(out, ToResponse(l))
		}
		respond.OK(w, http.StatusOK, "", out)
	}
}

// @Summary  Obtener porcino
// @Tags     livestock
// @Produce  json
// @Param    id path string true "id"
// @Success  200 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/livestock/{id} [get]
func getLivestockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "", ToResponse(l))
	}
}

// @Summary  Obtener porcino por identificación
// @Tags     livestock
// @Produce  json
// @Param    tag path string true "identificación (sin distinguir mayúsculas)"
// @Success  200 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/livestock/tag/{tag} [get]
func getLivestockByTagHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.GetByTag(r.Context(), chi.URLParam(r, "tag"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "", ToResponse(l))
	}
}

// @Summary  Actualizar porcino (parcial)
// @Tags     livestock
// @Accept   json
// @Produce  json
// @Param    id   path string      true "id"
// @Param    body body UpdateInput true "campos a cambiar"
// @Success  200 {object} respond.Envelope
// @Failure  400 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/livestock/{id} [put]
func updateLivestockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := respond.DecodeCanonical(r, aliases.Livestock, &in); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		l, err := svc.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "livestock updated", ToResponse(l))
	}
}

// @Summary  Eliminar porcino
// @Tags     livestock
// @Produce  json
// @Param    id path string true "id"
// @Success  200 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/livestock/{id} [delete]
func deleteLivestockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "livestock deleted", nil)
	}
}
