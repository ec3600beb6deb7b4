package handlers

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/helpers"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/unrolled/render"
)

type MembershipHandler struct {
	memberships *services.MembershipService
	newsletter  *services.NewsletterService
	render      *render.Render
}

func NewMembershipHandler(memberships *services.MembershipService, newsletter *services.NewsletterService, r *render.Render) *MembershipHandler {
	return &MembershipHandler{memberships: memberships, newsletter: newsletter, render: r}
}

func (h *MembershipHandler) Profile(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, h.memberships.Profile())
}

func (h *MembershipHandler) ActivateCode(w http.ResponseWriter, r *http.Request) {
	var req ValidateCodeRequest
	if err := helpers.DecodeJSON(w, r, &req); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	view, err := h.memberships.ActivateProfile(r.Context(), req.Code)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, view)
}

func (h *MembershipHandler) RequestMembership(w http.ResponseWriter, r *http.Request) {
	var app services.MembershipApplication
	if err := helpers.DecodeJSON(w, r, &app); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	result, err := h.memberships.Request(r.Context(), app)
	if err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, result)
}

func (h *MembershipHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var signup services.NewsletterSignup
	if err := helpers.DecodeJSON(w, r, &signup); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}

	if err := h.newsletter.Subscribe(r.Context(), signup); err != nil {
		helpers.RespondError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusAccepted, map[string]string{"status": "subscribed"})
}
