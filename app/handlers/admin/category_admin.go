package admin

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *AdminHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := helpers.DecodeJSON(w, r, &c); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	created, err := h.catalog.CreateCategory(r.Context(), c)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, created)
}

func (h *AdminHandler) EditCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := helpers.DecodeJSON(w, r, &c); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	updated, err := h.catalog.UpdateCategory(r.Context(), mux.Vars(r)["id"], c)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
