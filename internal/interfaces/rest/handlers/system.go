package handlers

import (
	"net/http"

	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
)

// HandleRoot reports the service name and build version
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  RootResponse
// @Router       / [get]
func (h *Handlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, RootResponse{
		Message: "Webpay Plus gateway",
		Version: h.version,
		Status:  "running",
	})
}

// @Summary      Liveness check
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}
