package handlers

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cart   *services.CartService
	render *render.Render
}

func NewCartHandler(cart *services.CartService, r *render.Render) *CartHandler {
	return &CartHandler{cart: cart, render: r}
}

type CartResponse struct {
	Items    models.Cart `json:"items"`
	Count    int         `json:"count"`
	Subtotal int64       `json:"subtotal"`
}

type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) respond(w http.ResponseWriter, status int, cart models.Cart) {
	if cart == nil {
		cart = models.Cart{}
	}
	h.render.JSON(w, status, CartResponse{Items: cart, Count: cart.Count(), Subtotal: cart.Subtotal()})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.cart.Cart())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req services.AddToCartRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	cart, err := h.cart.AddItem(r.Context(), req)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.respond(w, http.StatusOK, cart)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	cart, err := h.cart.UpdateQuantity(r.Context(), mux.Vars(r)["key"], req.Delta)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.respond(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.RemoveItem(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.respond(w, http.StatusOK, cart)
}
