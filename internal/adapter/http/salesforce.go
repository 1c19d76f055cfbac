package httpadapter

import (
	"encoding/json"
	"net/http"

	"maildeck/internal/core/port"
)

// handleSalesforceStatus returns the reconciled connection snapshot. When
// the sync service is unreachable the last known snapshot is returned with
// an explanatory message instead of an error.
func (h *Handler) handleSalesforceStatus(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	view, err := h.crm.Status(r.Context(), clientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleSalesforceConnect validates credentials locally first; an empty
// field never reaches the network.
func (h *Handler) handleSalesforceConnect(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var req struct {
		InstanceURL string `json:"instance_url"`
		AppID       string `json:"app_id"`
		AppSecret   string `json:"app_secret"`
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	view, err := h.crm.Connect(r.Context(), port.ConnectRequest{
		ClientID:    clientID,
		InstanceURL: req.InstanceURL,
		AppID:       req.AppID,
		AppSecret:   req.AppSecret,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleSalesforceDisconnect tears the connection down. The console asks
// for confirmation before calling this; contacts already imported stay.
func (h *Handler) handleSalesforceDisconnect(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	if err = h.crm.Disconnect(r.Context(), clientID); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSalesforceSync(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var req struct {
		FullSync bool `json:"full_sync"`
	}
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	view, err := h.crm.Sync(r.Context(), clientID, req.FullSync)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSalesforceFields(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	groups, err := h.crm.Fields(r.Context(), clientID)
	if err != nil {
		http.Error(w, "could not fetch field list from the sync service", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, http.StatusOK, groups)
}
