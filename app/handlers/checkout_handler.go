package handlers

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	orders *services.OrderService
	render *render.Render
}

func NewCheckoutHandler(orders *services.OrderService, r *render.Render) *CheckoutHandler {
	return &CheckoutHandler{orders: orders, render: r}
}

type ValidateCodeRequest struct {
	Code string `json:"code"`
}

func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req services.QuoteRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	quote, err := h.orders.Quote(req)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, quote)
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req services.CheckoutRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	result, err := h.orders.Checkout(r.Context(), req)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, result)
}

func (h *CheckoutHandler) ValidateMembershipCode(w http.ResponseWriter, r *http.Request) {
	var req ValidateCodeRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"valid": h.orders.ValidateMembershipCode(req.Code)})
}
