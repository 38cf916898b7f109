package controller

import (
	"net/http"

	"kkotdam/logging"
	"kkotdam/service"
)

// ImportResponse is returned by POST /admin/catalog/import
type ImportResponse struct {
	Status   string `json:"status"`
	Imported int    `json:"imported"`
}

// AdminController handles catalog maintenance requests
type AdminController struct {
	imageSync service.ImageSyncServiceInterface
	seeds     service.SeedServiceInterface
}

// NewAdminController creates a new AdminController
func NewAdminController(imageSync service.ImageSyncServiceInterface, seeds service.SeedServiceInterface) *AdminController {
	return &AdminController{
		imageSync: imageSync,
		seeds:     seeds,
	}
}

// SyncImages handles POST /admin/flowers/images/sync?folderId=
// Links images in a Google Drive folder to flowers by filename
func (c *AdminController) SyncImages(w http.ResponseWriter, r *http.Request) {
	folderID := r.URL.Query().Get("folderId")
	logging.Ctx(r.Context()).Info().Str("folderId", folderID).Msg("📥 SyncImages: Received request")

	result, err := c.imageSync.SyncFlowerImages(r.Context(), folderID)
	if err != nil {
		writeError(w, r, "SyncImages", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ImportCatalog handles POST /admin/catalog/import
// Re-imports the configured catalog seed file
func (c *AdminController) ImportCatalog(w http.ResponseWriter, r *http.Request) {
	logging.Ctx(r.Context()).Info().Msg("📥 ImportCatalog: Received request")

	n, err := c.seeds.Import(r.Context())
	if err != nil {
		writeError(w, r, "ImportCatalog", err)
		return
	}

	writeJSON(w, http.StatusOK, ImportResponse{Status: "success", Imported: n})
}
