package handlers

import (
	"net/http"
	"strconv"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	catalog *services.CatalogService
	site    *services.SiteService
	render  *render.Render
}

func NewProductHandler(catalog *services.CatalogService, site *services.SiteService, r *render.Render) *ProductHandler {
	return &ProductHandler{catalog: catalog, site: site, render: r}
}

// Products lists the catalog. Query: q, collection, best_selling.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	bestSelling, _ := strconv.ParseBool(query.Get("best_selling"))

	products := h.catalog.Products(services.ProductFilter{
		Search:          query.Get("q"),
		Collection:      models.Collection(query.Get("collection")),
		BestSellingOnly: bestSelling,
	})
	h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Product(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Product(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *ProductHandler) SiteConfig(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.site.Config())
}
