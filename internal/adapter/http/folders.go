package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"
)

type folderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Version   int64     `json:"version"`
	Templates int       `json:"templates"`
	CreatedAt time.Time `json:"created_at"`
}

type folderOverviewResponse struct {
	Folders []folderResponse `json:"folders"`
	Unfiled int              `json:"unfiled"`
	Total   int              `json:"total"`
}

type folderRequest struct {
	Name    string `json:"name"`
	Version int64  `json:"version"`
}

// handleFolderOverview returns every folder with its template count plus
// the Unfiled and total counts for the sidebar.
func (h *Handler) handleFolderOverview(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	overview, err := h.library.FolderOverview(r.Context(), clientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := folderOverviewResponse{
		Folders: make([]folderResponse, 0, len(overview.Folders)),
		Unfiled: overview.Unfiled,
		Total:   overview.Total,
	}
	for _, f := range overview.Folders {
		resp.Folders = append(resp.Folders, folderResponse{
			ID:        f.ID,
			Name:      f.Name,
			Version:   f.Version,
			Templates: f.Templates,
			CreatedAt: f.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	var req folderRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	f, err := h.library.CreateFolder(r.Context(), clientID, req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, folderResponse{
		ID: f.ID, Name: f.Name, Version: f.Version, CreatedAt: f.CreatedAt,
	})
}

func (h *Handler) handleRenameFolder(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	folderID, err := urlID(r, "folderID")
	if err != nil {
		http.Error(w, "invalid folder id", http.StatusBadRequest)
		return
	}
	var req folderRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	f, err := h.library.RenameFolder(r.Context(), clientID, folderID, req.Name, req.Version)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, folderResponse{
		ID: f.ID, Name: f.Name, Version: f.Version, CreatedAt: f.CreatedAt,
	})
}

// handleDeleteFolder deletes a folder; referencing templates are moved to
// Unfiled, never deleted. The response carries how many were moved so the
// console can show it.
func (h *Handler) handleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	clientID, err := urlID(r, "clientID")
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	folderID, err := urlID(r, "folderID")
	if err != nil {
		http.Error(w, "invalid folder id", http.StatusBadRequest)
		return
	}
	unfiled, err := h.library.DeleteFolder(r.Context(), clientID, folderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"templates_unfiled": unfiled})
}
