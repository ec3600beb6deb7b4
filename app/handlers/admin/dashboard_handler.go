package admin

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render      *render.Render
	catalog     *services.CatalogService
	orders      *services.OrderService
	memberships *services.MembershipService
	site        *services.SiteService
}

func NewAdminHandler(
	render *render.Render,
	catalog *services.CatalogService,
	orders *services.OrderService,
	memberships *services.MembershipService,
	site *services.SiteService,
) *AdminHandler {
	return &AdminHandler{
		render:      render,
		catalog:     catalog,
		orders:      orders,
		memberships: memberships,
		site:        site,
	}
}

type DashboardSummary struct {
	Products           int                        `json:"products"`
	LowStockProducts   []models.Product           `json:"low_stock_products"`
	Orders             map[models.OrderStatus]int `json:"orders"`
	PendingMemberships int                        `json:"pending_memberships"`
	Members            int                        `json:"members"`
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products(services.ProductFilter{})
	lowStock := make([]models.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			lowStock = append(lowStock, p)
		}
	}

	pending := 0
	for _, req := range h.memberships.Requests() {
		if req.Status == models.MembershipPending {
			pending++
		}
	}

	h.render.JSON(w, http.StatusOK, DashboardSummary{
		Products:           len(products),
		LowStockProducts:   lowStock,
		Orders:             h.orders.OrderStatusCounts(),
		PendingMemberships: pending,
		Members:            len(h.memberships.Members()),
	})
}

func (h *AdminHandler) UpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	var cfg models.SiteConfig
	if err := helpers.DecodeJSON(w, r, &cfg); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	updated, err := h.site.UpdateConfig(r.Context(), cfg)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, updated)
}
