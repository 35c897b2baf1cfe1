package handlers

import (
	"net/http"

	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

// HandleCallback is the return URL the payer's browser lands on. It commits
// the transaction and always answers with an HTML page.
//
// @Summary      Payment return page
// @Tags         payments
// @Produce      html
// @Param        token_ws          query  string  false  "Transaction token"
// @Param        TBK_ORDEN_COMPRA  query  string  false  "Order aborted by the payer"
// @Success      200
// @Router       /payment/callback [get]
func (h *Handlers) HandleCallback(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("callback panicked", "panic", rec)
			h.renderPage(w, http.StatusInternalServerError, pageError, errorPage{
				Message: "No pudimos procesar el pago.",
			})
		}
	}()

	query := r.URL.Query()

	var token string
	if err := runtime.BindQueryParameter("form", true, false, "token_ws", query, &token); err != nil {
		h.renderPage(w, http.StatusBadRequest, pageError, errorPage{Message: err.Error()})
		return
	}

	if token == "" {
		h.renderPage(w, http.StatusOK, pageNoToken, noTokenPage{BuyOrder: query.Get("TBK_ORDEN_COMPRA")})
		return
	}

	result := h.payments.Commit(r.Context(), token)
	if !result.Success {
		h.renderPage(w, rest.StatusFor(result.Kind), pageError, errorPage{Message: result.Error})
		return
	}

	if result.Paid() {
		h.renderPage(w, http.StatusOK, pageSuccess, result.Confirmation)
		return
	}

	h.renderPage(w, http.StatusOK, pageFailure, result.Confirmation)
}

func (h *Handlers) renderPage(w http.ResponseWriter, status int, name string, data any) {
	if err := h.pages.render(w, status, name, data); err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
	}
}
