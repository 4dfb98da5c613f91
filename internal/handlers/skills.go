package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/barterup-bff/internal/models"
)

// NewSkillsHandler lists the selectable skills
// @Summary List skills
// @Description Returns the fixed skill allow-list
// @Tags profile
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SkillsResponse}
// @Router /api/skills [get]
func NewSkillsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills := models.Skills()
		writeSuccess(w, http.StatusOK, "Skills retrieved successfully", models.SkillsResponse{
			Skills: skills,
			Total:  len(skills),
		})
	}
}

// RegisterSkillsHandler registers routes for the skill list
func RegisterSkillsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/skills", h)
}
