package controller

import (
	"net/http"

	"kkotdam/utils"
)

// OptionController serves the selectable recommendation options
type OptionController struct{}

// NewOptionController creates a new OptionController
func NewOptionController() *OptionController {
	return &OptionController{}
}

// GetOptions handles GET /options
func (c *OptionController) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, utils.Options())
}
