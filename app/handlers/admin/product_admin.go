package admin

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/gorilla/mux"
)

type AdminProduct struct {
	models.Product
	LowStock bool `json:"low_stock"`
}

func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products(services.ProductFilter{Search: r.URL.Query().Get("q")})

	out := make([]AdminProduct, 0, len(products))
	for _, p := range products {
		out = append(out, AdminProduct{Product: p, LowStock: p.LowStock()})
	}
	h.render.JSON(w, http.StatusOK, out)
}

func (h *AdminHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := helpers.DecodeJSON(w, r, &p); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	created, err := h.catalog.CreateProduct(r.Context(), p)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := helpers.DecodeJSON(w, r, &p); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	updated, err := h.catalog.UpdateProduct(r.Context(), mux.Vars(r)["id"], p)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
