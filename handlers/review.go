package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reviewRepo "taskhive/database/repository/review"
	"taskhive/models"
	"taskhive/utils"
)

// ReviewHandler serves review endpoints.
type ReviewHandler struct {
	Repo reviewRepo.ReviewRepository
}

func NewReviewHandler(repo reviewRepo.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// Create records a customer's rating of a completed booking.
func (h *ReviewHandler) Create(c *gin.Context) {
	var input struct {
		BookingID  string `json:"booking_id" binding:"required"`
		CustomerID string `json:"customer_id" binding:"required"`
		TaskerID   string `json:"tasker_id" binding:"required"`
		Rating     int    `json:"rating" binding:"required"`
		ReviewText string `json:"review_text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "rating must be 1-5")
		return
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  input.BookingID,
		CustomerID: input.CustomerID,
		TaskerID:   input.TaskerID,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		CreatedAt:  time.Now(),
	}
	if err := h.Repo.Create(c.Request.Context(), review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "review": review})
}

// ListByTasker returns a tasker's reviews, newest first.
func (h *ReviewHandler) ListByTasker(c *gin.Context) {
	reviews, err := h.Repo.GetByTasker(c.Request.Context(), c.Param("taskerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
