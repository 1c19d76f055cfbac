package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

type templateRequest struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	PreviewText string `json:"preview_text"`
	Body        string `json:"body"`
	FolderID    *int64 `json:"folder_id"`
}

type templateResponse struct {
	ID          int64     `json:"id"`
	FolderID    *int64    `json:"folder_id"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	PreviewText string    `json:"preview_text"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTemplateResponse(t *domain.Template) templateResponse {
	return templateResponse{
		ID:          t.ID,
		FolderID:    t.FolderID,
		Name:        t.Name,
		Subject:     t.Subject,
		PreviewText: t.PreviewText,
		Body:        t.Body,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// handleListTemplates lists templates, narrowed by the optional `folder`
// query parameter: a folder id, or the literal "unfiled".
func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var filter port.TemplateFilter
	if folder := r.URL.Query().Get("folder"); folder != "" {
		if folder == "unfiled" {
			filter.Unfiled = true
		} else {
			id, err := strconv.ParseInt(folder, 10, 64)
			if err != nil {
				http.Error(w, "invalid folder filter", http.StatusBadRequest)
				return
			}
			filter.FolderID = &id
		}
	}
	templates, err := h.library.Templates(r.Context(), clientID, filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]templateResponse, 0, len(templates))
	for i := range templates {
		resp = append(resp, toTemplateResponse(&templates[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var req templateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	t, err := h.library.CreateTemplate(r.Context(), clientID, port.TemplateInput{
		Name:        req.Name,
		Subject:     req.Subject,
		PreviewText: req.PreviewText,
		Body:        req.Body,
		FolderID:    req.FolderID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toTemplateResponse(t))
}

func (h *Handler) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	clientID, templateID, ok := h.templatePath(w, r)
	if !ok {
		return
	}
	t, err := h.library.Template(r.Context(), clientID, templateID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toTemplateResponse(t))
}

func (h *Handler) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	clientID, templateID, ok := h.templatePath(w, r)
	if !ok {
		return
	}
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	t, err := h.library.UpdateTemplate(r.Context(), clientID, templateID, port.TemplateInput{
		Name:        req.Name,
		Subject:     req.Subject,
		PreviewText: req.PreviewText,
		Body:        req.Body,
		FolderID:    req.FolderID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toTemplateResponse(t))
}

func (h *Handler) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	clientID, templateID, ok := h.templatePath(w, r)
	if !ok {
		return
	}
	if err := h.library.DeleteTemplate(r.Context(), clientID, templateID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) templatePath(w http.ResponseWriter, r *http.Request) (clientID, templateID int64, ok bool) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return 0, 0, false
	}
	templateID, err = urlID(r, "templateID")
	if err != nil {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return 0, 0, false
	}
	return clientID, templateID, true
}
