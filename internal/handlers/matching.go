package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
	pkgerrors "github.com/talentbridge/talentbridge-backend/internal/pkg/errors"
	"github.com/talentbridge/talentbridge-backend/internal/services"
)

type MatchingHandler struct {
	log         *logger.Logger
	matchingSvc services.MatchingService
	talentSvc   services.TalentService
	offerSvc    services.OfferService
}

func NewMatchingHandler(log *logger.Logger, matchingSvc services.MatchingService, talentSvc services.TalentService, offerSvc services.OfferService) *MatchingHandler {
	return &MatchingHandler{
		log:         log.With("handler", "MatchingHandler"),
		matchingSvc: matchingSvc,
		talentSvc:   talentSvc,
		offerSvc:    offerSvc,
	}
}

// POST /api/offers/:id/match?min_score=60&notify=true
// Runs the batch matcher for one offer against the current talent pool.
func (h *MatchingHandler) MatchOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_offer_id", err)
		return
	}

	minScore, _ := strconv.Atoi(c.DefaultQuery("min_score", "0"))
	notify := c.DefaultQuery("notify", "true") != "false"

	results, err := h.matchingSvc.MatchTalentsForOffer(c.Request.Context(), offerID, minScore, notify)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "offer_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "matching_failed", err)
		return
	}
	RespondOK(c, gin.H{"created": len(results), "matches": results})
}

// GET /api/offers/:id/matches?limit=20
func (h *MatchingHandler) GetOfferMatches(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_offer_id", err)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.matchingSvc.GetBestMatchesForOffer(c.Request.Context(), offerID, limit)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "offer_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "matches_failed", err)
		return
	}
	RespondOK(c, gin.H{"matches": views})
}

// POST /api/offers/:id/publish
// Flips the offer to PUBLISHED and runs matching with notifications on.
func (h *MatchingHandler) PublishOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_offer_id", err)
		return
	}

	results, err := h.offerSvc.PublishOffer(c.Request.Context(), offerID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "offer_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "publish_failed", err)
		return
	}
	RespondOK(c, gin.H{"created": len(results)})
}

// POST /api/talents/:id/rematch
// Recomputes the talent's row against every published offer.
func (h *MatchingHandler) RematchTalent(c *gin.Context) {
	talentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_talent_id", err)
		return
	}

	refreshed, err := h.matchingSvc.UpdateMatchesForTalent(c.Request.Context(), talentID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "talent_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "rematch_failed", err)
		return
	}
	RespondOK(c, gin.H{"refreshed": refreshed})
}

type updateSkillsRequest struct {
	Skills []string `json:"skills" binding:"required"`
}

// PUT /api/talents/:id/skills
// Persists the new skill list, then refreshes the talent's match matrix.
func (h *MatchingHandler) UpdateTalentSkills(c *gin.Context) {
	talentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_talent_id", err)
		return
	}
	var req updateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	refreshed, err := h.talentSvc.UpdateSkills(c.Request.Context(), talentID, req.Skills)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "talent_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "update_failed", err)
		return
	}
	RespondOK(c, gin.H{"refreshed": refreshed})
}

type classifyRequest struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

// POST /api/classify
// Stateless title+skills classification, used by profile-import tooling.
func (h *MatchingHandler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	category := h.matchingSvc.ClassifyCategory(req.Title, req.Skills)
	RespondOK(c, gin.H{"category": category})
}
