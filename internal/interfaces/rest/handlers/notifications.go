package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/infrastructure/messaging"
	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
	"github.com/google/uuid"
)

// HandleNotification acknowledges a notification and fans it out
// @Summary      Accept a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request  body      NotificationRequest  true  "Notification"
// @Success      200      {object}  NotificationResponse
// @Failure      400      {object}  rest.ErrorResponse
// @Router       /notifications [post]
func (h *Handlers) HandleNotification(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	notification := messaging.Notification{
		ID:         uuid.NewString(),
		Categoria:  *req.Categoria,
		Mensaje:    req.Mensaje,
		Adicional:  req.Adicional,
		ReceivedAt: time.Now().UTC(),
	}

	// Delivery is best effort; the caller always gets its acknowledgement.
	if err := h.notifications.Publish(r.Context(), notification); err != nil {
		h.logger.Warn("failed to publish notification", "id", notification.ID, "error", err)
	}

	rest.WriteJSON(w, http.StatusOK, NotificationResponse{
		Success:   true,
		Message:   fmt.Sprintf("notificacion %s enviada", req.Mensaje),
		Categoria: *req.Categoria,
		Adicional: req.Adicional,
	})
}

// HandlePaymentMessage is kept for old clients only
// @Summary      Legacy payment message lookup
// @Tags         notifications
// @Deprecated
// @Produce      json
// @Param        id   path      string  true  "Identifier"
// @Success      200  {object}  PaymentMessageResponse
// @Router       /mensajePago/{id} [get]
func (h *Handlers) HandlePaymentMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Deprecation", "true")
	w.Header().Set("Link", `</payments/status/{token}>; rel="successor-version"`)

	rest.WriteJSON(w, http.StatusOK, PaymentMessageResponse{
		Data:    r.PathValue("id"),
		Message: "deprecated, use GET /payments/status/{token}",
	})
}
