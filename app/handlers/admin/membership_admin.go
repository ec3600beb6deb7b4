package admin

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/gorilla/mux"
)

func (h *AdminHandler) GetMembershipRequests(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.memberships.Requests())
}

func (h *AdminHandler) ApproveMembership(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberships.Approve(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, member)
}

func (h *AdminHandler) RejectMembership(w http.ResponseWriter, r *http.Request) {
	req, err := h.memberships.Reject(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, req)
}

func (h *AdminHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.memberships.Members())
}

func (h *AdminHandler) RevokeMember(w http.ResponseWriter, r *http.Request) {
	if err := h.memberships.Revoke(r.Context(), mux.Vars(r)["id"]); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
