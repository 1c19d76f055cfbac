package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

type campaignRequest struct {
	Name        string   `json:"name"`
	TemplateID  *int64   `json:"template_id"`
	FilterTags  []string `json:"filter_tags"`
	ScheduledAt *string  `json:"scheduled_at"`
	Version     int64    `json:"version"`
}

type campaignResponse struct {
	ID             int64      `json:"id"`
	TemplateID     *int64     `json:"template_id"`
	Name           string     `json:"name"`
	FilterTags     []string   `json:"filter_tags"`
	Status         string     `json:"status"`
	RecipientCount int        `json:"recipient_count"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		TemplateID:     c.TemplateID,
		Name:           c.Name,
		FilterTags:     c.FilterTags,
		Status:         string(c.Status),
		RecipientCount: c.RecipientCount,
		ScheduledAt:    c.ScheduledAt,
		Version:        c.Version,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// handleListCampaigns lists campaigns newest first; `status` narrows to one
// lifecycle state.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var status *domain.CampaignStatus
	if s := r.URL.Query().Get("status"); s != "" {
		parsed, err := domain.ParseCampaignStatus(s)
		if err != nil {
			http.Error(w, "invalid status filter", http.StatusBadRequest)
			return
		}
		status = &parsed
	}
	campaigns, err := h.campaigns.Campaigns(r.Context(), clientID, status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleCreateCampaign creates a campaign. scheduled_at (RFC3339) decides
// the initial status once: present means scheduled, absent means draft.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var req campaignRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var scheduledAt *time.Time
	if req.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			http.Error(w, "invalid scheduled_at, want RFC3339", http.StatusBadRequest)
			return
		}
		scheduledAt = &t
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), clientID, port.CreateCampaignInput{
		Name:        req.Name,
		TemplateID:  req.TemplateID,
		FilterTags:  req.FilterTags,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	clientID, campaignID, ok := h.campaignPath(w, r)
	if !ok {
		return
	}
	c, err := h.campaigns.Campaign(r.Context(), clientID, campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	clientID, campaignID, ok := h.campaignPath(w, r)
	if !ok {
		return
	}
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.UpdateCampaign(r.Context(), clientID, campaignID, port.UpdateCampaignInput{
		Name:       req.Name,
		TemplateID: req.TemplateID,
		FilterTags: req.FilterTags,
		Version:    req.Version,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	clientID, campaignID, ok := h.campaignPath(w, r)
	if !ok {
		return
	}
	if err := h.campaigns.DeleteCampaign(r.Context(), clientID, campaignID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleReportCampaignStatus records a status reported by the send
// pipeline (sending, sent, failed), subject to the transition rules.
func (h *Handler) handleReportCampaignStatus(w http.ResponseWriter, r *http.Request) {
	clientID, campaignID, ok := h.campaignPath(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	status, err := domain.ParseCampaignStatus(req.Status)
	if err != nil {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	c, err := h.campaigns.ReportStatus(r.Context(), clientID, campaignID, status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) campaignPath(w http.ResponseWriter, r *http.Request) (clientID, campaignID int64, ok bool) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return 0, 0, false
	}
	campaignID, err = urlID(r, "campaignID")
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, 0, false
	}
	return clientID, campaignID, true
}
