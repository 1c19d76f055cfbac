package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"maildeck/internal/core/domain"
)

type clientRequest struct {
	Name string `json:"name"`
}

type clientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.Clients(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := make([]clientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, toClientResponse(&clients[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.clients.CreateClient(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toClientResponse(c))
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	c, err := h.clients.Client(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientResponse(c))
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var req clientRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.clients.UpdateClient(r.Context(), id, req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClientResponse(c))
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	if err = h.clients.DeleteClient(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
