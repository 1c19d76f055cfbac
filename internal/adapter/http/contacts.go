package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"maildeck/internal/core/domain"
)

type contactResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return contactResponse{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Tags:      tags,
		CreatedAt: c.CreatedAt,
	}
}

func (h *Handler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	contacts, err := h.audience.Contacts(r.Context(), clientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]contactResponse, 0, len(contacts))
	for i := range contacts {
		resp = append(resp, toContactResponse(&contacts[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListTags(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	tags, err := h.audience.Tags(r.Context(), clientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tags)
}

// handleSegmentPreview renders the live "N recipient(s)" count for a tag
// selection while the user edits it. The same predicate produces the
// recipient snapshot at campaign creation.
func (h *Handler) handleSegmentPreview(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var req struct {
		FilterTags []string `json:"filter_tags"`
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	preview, err := h.audience.Preview(r.Context(), clientID, req.FilterTags)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, preview)
}
