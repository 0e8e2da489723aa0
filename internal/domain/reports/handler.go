package reports

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"

	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/platform/logger"
	"farm-records/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterClientRoutes monta los reportes bajo /api/clients.
func RegisterClientRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/report/cedula/{cedula}", clientReportHandler(svc, log))
	r.Get("/report/general", generalReportHandler(svc, log))
	r.Get("/report/pdf/{cedula}", clientPDFHandler(svc, log))
	r.Get("/with-livestock", clientsWithLivestockHandler(svc, log))
}

// RegisterLivestockRoutes monta las estadísticas bajo /api/livestock.
func RegisterLivestockRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/stats", breedStatisticsHandler(svc, log))
}

type EntryResponse struct {
	livestock.Response
	Feed *feeds.Response `json:"feed"`
}

type ClientReportResponse struct {
	Client      clients.Response `json:"client"`
	Livestock   []EntryResponse  `json:"livestock"`
	TotalCount  int              `json:"totalCount"`
	TotalWeight float64          `json:"totalWeight"`
}

type SummaryResponse struct {
	ClientCount    int     `json:"clientCount"`
	LivestockCount int     `json:"livestockCount"`
	TotalWeightAll float64 `json:"totalWeightAll"`
}

type GeneralReportResponse struct {
	Report  []ClientReportResponse `json:"report"`
	Summary SummaryResponse        `json:"summary"`
}

type BreedStatResponse struct {
	Breed         int     `json:"breed"`
	BreedLabel    string  `json:"breedLabel"`
	Count         int     `json:"count"`
	AverageWeight float64 `json:"averageWeight"`
	AverageAge    float64 `json:"averageAge"`
}

type BreedStatisticsResponse struct {
	TotalCount int                 `json:"totalCount"`
	Breeds     []BreedStatResponse `json:"breeds"`
}

type ClientLivestockCountResponse struct {
	Client         clients.Response `json:"client"`
	LivestockCount int              `json:"livestockCount"`
}

func ToClientReportResponse(rep ClientReport) ClientReportResponse {
	out := ClientReportResponse{
		Client:      clients.ToResponse(rep.Client),
		Livestock:   make([]EntryResponse, 0, len(rep.Livestock)),
		TotalCount:  rep.TotalCount,
		TotalWeight: rep.TotalWeight,
	}
	for _, e := range rep.Livestock {
		er := EntryResponse{Response: livestock.ToResponse(e.Livestock)}
		if f, ok := e.Feed.Entity(); ok {
			fr := feeds.ToResponse(f)
			er.Feed = &fr
		}
		out.Livestock = append(out.Livestock, er)
	}
	return out
}

func ToBreedStatisticsResponse(st BreedStatistics) BreedStatisticsResponse {
	out := BreedStatisticsResponse{TotalCount: st.TotalCount, Breeds: make([]BreedStatResponse, 0, len(st.Breeds))}
	for _, b := range st.Breeds {
		out.Breeds = append(out.Breeds, BreedStatResponse{
			Breed:         int(b.Breed),
			BreedLabel:    b.Label,
			Count:         b.Count,
			AverageWeight: b.AverageWeight,
			AverageAge:    b.AverageAge,
		})
	}
	return out
}

// @Summary  Reporte de un cliente por cédula
// @Tags     reports
// @Produce  json
// @Param    cedula path string true "cédula"
// @Success  200 {object} respond.Envelope
// @Failure  404 {object} respond.Envelope
// @Router   /api/clients/report/cedula/{cedula} [get]
func clientReportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.ForClient(r.Context(), chi.URLParam(r, "cedula"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "", ToClientReportResponse(rep))
	}
}

// @Summary  Reporte general de todos los clientes
// @Tags     reports
// @Produce  json
// @Success  200 {object} respond.Envelope
// @Router   /api/clients/report/general [get]
func generalReportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.General(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := GeneralReportResponse{
			Report: make([]ClientReportResponse, 0, len(rep.Clients)),
			Summary: SummaryResponse{
				ClientCount:    rep.Summary.ClientCount,
				LivestockCount: rep.Summary.LivestockCount,
				TotalWeightAll: rep.Summary.TotalWeightAll,
			},
		}
		for _, c := range rep.Clients {
			out.Report = append(out.Report, ToClientReportResponse(c))
		}
		respond.OK(w, http.StatusOK, "", out)
	}
}

// @Summary  Reporte PDF de un cliente
// @Tags     reports
// @Produce  application/pdf
// @Param    cedula path string true "cédula"
// @Success  200 {file} binary
// @Failure  404 {object} respond.Envelope
// @Router   /api/clients/report/pdf/{cedula} [get]
func clientPDFHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.ForClient(r.Context(), chi.URLParam(r, "cedula"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		// Se renderiza completo antes de escribir headers para poder responder JSON si falla.
		var buf bytes.Buffer
		if err := RenderClientPDF(&buf, rep); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", attachment("reporte-"+rep.Client.Cedula+".pdf"))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

// attachment arma Content-Disposition con el nombre escapado (RFC 2231 si no es ASCII).
func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}

// @Summary  Clientes con al menos un porcino
// @Tags     reports
// @Produce  json
// @Success  200 {object} respond.Envelope
// @Router   /api/clients/with-livestock [get]
func clientsWithLivestockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ClientsWithLivestock(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		out := make([]ClientLivestockCountResponse, 0, len(items))
		for _, it := range items {
			out = append(out, ClientLivestockCountResponse{Client: clients.ToResponse(it.Client), LivestockCount: it.LivestockCount})
		}
		respond.OK(w, http.StatusOK, "", out)
	}
}

// @Summary  Estadísticas por raza
// @Tags     reports
// @Produce  json
// @Success  200 {object} respond.Envelope
// @Router   /api/livestock/stats [get]
func breedStatisticsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.BreedStatistics(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.OK(w, http.StatusOK, "", ToBreedStatisticsResponse(st))
	}
}
