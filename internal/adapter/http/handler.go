package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"maildeck/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it decodes console requests, calls the usecases and maps domain errors to
// status codes. Routes are registered on a chi.Router.
type Handler struct {
	clients   port.ClientUseCase
	audience  port.AudienceUseCase
	library   port.LibraryUseCase
	campaigns port.CampaignUseCase
	crm       port.SyncUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	clients port.ClientUseCase,
	audience port.AudienceUseCase,
	library port.LibraryUseCase,
	campaigns port.CampaignUseCase,
	crm port.SyncUseCase,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		clients:   clients,
		audience:  audience,
		library:   library,
		campaigns: campaigns,
		crm:       crm,
		logger:    logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/clients", h.handleListClients)
		r.Post("/clients", h.handleCreateClient)

		r.Route("/clients/{clientID}", func(r chi.Router) {
			r.Get("/", h.handleGetClient)
			r.Put("/", h.handleUpdateClient)
			r.Delete("/", h.handleDeleteClient)

			r.Get("/contacts", h.handleListContacts)
			r.Get("/tags", h.handleListTags)
			r.Post("/segment/preview", h.handleSegmentPreview)

			r.Get("/folders", h.handleFolderOverview)
			r.Post("/folders", h.handleCreateFolder)
			r.Put("/folders/{folderID}", h.handleRenameFolder)
			r.Delete("/folders/{folderID}", h.handleDeleteFolder)

			r.Get("/templates", h.handleListTemplates)
			r.Post("/templates", h.handleCreateTemplate)
			r.Get("/templates/{templateID}", h.handleGetTemplate)
			r.Put("/templates/{templateID}", h.handleUpdateTemplate)
			r.Delete("/templates/{templateID}", h.handleDeleteTemplate)

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{campaignID}", h.handleGetCampaign)
			r.Put("/campaigns/{campaignID}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{campaignID}", h.handleDeleteCampaign)
			r.Post("/campaigns/{campaignID}/status", h.handleReportCampaignStatus)

			r.Route("/salesforce", func(r chi.Router) {
				r.Get("/status", h.handleSalesforceStatus)
				r.Post("/connect", h.handleSalesforceConnect)
				r.Post("/disconnect", h.handleSalesforceDisconnect)
				r.Post("/sync", h.handleSalesforceSync)
				r.Get("/fields", h.handleSalesforceFields)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// urlID parses an int64 path parameter bound by the router.
func urlID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// writeJSON encodes v as the response body. Encoding rarely fails; when it
// does the error is logged and the response is left as-is.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto status codes. Unknown errors are
// logged and answered with a generic 500 so internals never leak.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *port.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrDuplicateName):
		http.Error(w, "name already in use", http.StatusConflict)
	case errors.Is(err, port.ErrVersionConflict):
		http.Error(w, "record was modified by another session", http.StatusConflict)
	case errors.Is(err, port.ErrStateConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrNotConnected):
		http.Error(w, "salesforce is not connected", http.StatusConflict)
	case errors.Is(err, port.ErrSyncInProgress):
		http.Error(w, "a sync is already running", http.StatusConflict)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
