package handlers

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orders *services.OrderService
	render *render.Render
}

func NewOrderHandler(orders *services.OrderService, r *render.Render) *OrderHandler {
	return &OrderHandler{orders: orders, render: r}
}

func (h *OrderHandler) Orders(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.orders.Orders())
}

func (h *OrderHandler) Order(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Order(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	var details models.ShippingDetails
	if err := helpers.DecodeJSON(w, r, &details); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	order, err := h.orders.UpdateShipping(r.Context(), mux.Vars(r)["id"], details)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Cancel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.orders.Invoice(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, invoice)
}
