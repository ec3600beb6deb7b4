package admin

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/gorilla/mux"
)

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.orders.Search(r.URL.Query().Get("q")))
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}
