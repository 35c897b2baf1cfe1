package handlers

import (
	"net/http"

	"github.com/DanielPopoola/webpay-gateway/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

// HandleCreate opens a Webpay transaction and returns where to send the payer
// @Summary      Create a transaction
// @Description  Amounts are truncated to whole currency units before reaching the gateway.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      CreateTransactionRequest  true  "Transaction"
// @Success      200      {object}  CreateTransactionResponse
// @Failure      400      {object}  rest.ErrorResponse
// @Failure      500      {object}  rest.ErrorResponse
// @Router       /payments/create [post]
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result := h.payments.Create(r.Context(), req.BuyOrder, req.SessionID, req.Amount, req.ReturnURL)
	if !result.Success {
		rest.WriteFailure(w, result.Kind, result.Error)
		return
	}

	rest.WriteJSON(w, http.StatusOK, newCreateTransactionResponse(req, result))
}

// HandleConfirm commits a transaction once the payer is back
// @Summary      Commit a transaction
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      ConfirmTransactionRequest  true  "Token"
// @Success      200      {object}  application.ConfirmationResult
// @Failure      400      {object}  rest.ErrorResponse
// @Failure      500      {object}  rest.ErrorResponse
// @Router       /payments/confirm [post]
func (h *Handlers) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmTransactionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result := h.payments.Commit(r.Context(), req.Token)
	if !result.Success {
		rest.WriteFailure(w, result.Kind, result.Error)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result)
}

// HandleStatus reads a transaction without changing it
// @Summary      Read a transaction's status
// @Tags         payments
// @Produce      json
// @Param        token  path      string  true  "Transaction token"
// @Success      200    {object}  application.ConfirmationResult
// @Failure      400    {object}  rest.ErrorResponse
// @Failure      500    {object}  rest.ErrorResponse
// @Router       /payments/status/{token} [get]
func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	var token string
	err := runtime.BindStyledParameterWithOptions("simple", "token", r.PathValue("token"), &token, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.payments.Status(r.Context(), token)
	if !result.Success {
		rest.WriteFailure(w, result.Kind, result.Error)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result)
}

// HandleRefund reverses or partially nullifies a transaction
// @Summary      Refund a transaction
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      RefundTransactionRequest  true  "Refund"
// @Success      200      {object}  application.RefundResult
// @Failure      400      {object}  rest.ErrorResponse
// @Failure      500      {object}  rest.ErrorResponse
// @Router       /payments/refund [post]
func (h *Handlers) HandleRefund(w http.ResponseWriter, r *http.Request) {
	var req RefundTransactionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result := h.payments.Refund(r.Context(), req.Token, req.Amount)
	if !result.Success {
		rest.WriteFailure(w, result.Kind, result.Error)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result)
}
