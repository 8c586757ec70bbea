package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive/models"
	"taskhive/services/booking"
	"taskhive/services/catalog"
	"taskhive/services/matching"
	"taskhive/utils"
)

// AIHandler serves the classify / followups / match flow.
type AIHandler struct {
	Catalog  *catalog.Catalog
	Matching matching.MatchingService
	Sessions booking.SessionService
}

func NewAIHandler(cat *catalog.Catalog, matchSvc matching.MatchingService, sessions booking.SessionService) *AIHandler {
	return &AIHandler{Catalog: cat, Matching: matchSvc, Sessions: sessions}
}

// Classify maps a free-text request onto a catalog service.
func (h *AIHandler) Classify(c *gin.Context) {
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	serviceID := h.Catalog.Classify(input.Text)
	def, _ := h.Catalog.Get(serviceID)
	c.JSON(http.StatusOK, gin.H{
		"service_id":   serviceID,
		"service_name": def.Label,
	})
}

// Followups returns the follow-up question specs for a service. Unknown
// service ids fall back to the generic questions.
func (h *AIHandler) Followups(c *gin.Context) {
	serviceID := c.Param("serviceID")
	c.JSON(http.StatusOK, gin.H{
		"service_id": serviceID,
		"questions":  h.Catalog.Followups(serviceID),
	})
}

// Match returns ranked providers for a service near a location.
func (h *AIHandler) Match(c *gin.Context) {
	var input struct {
		ServiceID string         `json:"service_id" binding:"required"`
		Location  *models.LatLng `json:"location"`
		Limit     int            `json:"limit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Location == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "location is required")
		return
	}

	ranked, err := h.Matching.Match(input.ServiceID, *input.Location, input.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service_id":    input.ServiceID,
		"providers":     ranked,
		"total_matches": len(ranked),
	})
}

// StartSession begins a cached classify → match session.
func (h *AIHandler) StartSession(c *gin.Context) {
	var input struct {
		CustomerID string         `json:"customer_id" binding:"required"`
		Query      string         `json:"query" binding:"required"`
		Location   *models.LatLng `json:"location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, followups, err := h.Sessions.StartSession(c.Request.Context(), input.CustomerID, input.Query, input.Location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"questions": followups,
	})
}

// UpdateSession merges follow-up answers and/or a provider selection.
func (h *AIHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Answers    map[string]string `json:"answers"`
		ProviderID string            `json:"provider_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Sessions.SubmitAnswers(c.Request.Context(), sessionID, input.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	if input.ProviderID != "" {
		session, err = h.Sessions.SelectProvider(c.Request.Context(), sessionID, input.ProviderID)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CancelSession discards a session.
func (h *AIHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}
