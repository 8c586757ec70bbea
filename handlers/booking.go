package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive/models"
	"taskhive/services/booking"
	"taskhive/services/notification"
	"taskhive/utils"
)

// BookingHandler serves booking CRUD and lifecycle endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// Create places a new booking in pending.
func (h *BookingHandler) Create(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully! Waiting for provider to accept...",
		"booking": bookingView(b),
	})
}

// Get returns a single booking.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bookingView(b)})
}

// List returns bookings for either a customer or a tasker.
func (h *BookingHandler) List(c *gin.Context) {
	customerID := c.Query("customer_id")
	taskerID := c.Query("tasker_id")

	var (
		bookings []models.Booking
		err      error
	)
	switch {
	case customerID != "":
		bookings, err = h.Svc.CustomerBookings(c.Request.Context(), customerID)
	case taskerID != "":
		bookings, err = h.Svc.TaskerBookings(c.Request.Context(), taskerID)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "either customer_id or tasker_id must be provided")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookingViews(bookings)})
}

// Accept handles the tasker accepting a pending booking.
func (h *BookingHandler) Accept(c *gin.Context) {
	var input struct {
		TaskerID string `json:"tasker_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	b, err := h.Svc.Accept(c.Request.Context(), c.Param("bookingID"), input.TaskerID)
	h.respondTransition(c, b, err)
}

// Decline handles the tasker declining a pending booking.
func (h *BookingHandler) Decline(c *gin.Context) {
	b, err := h.Svc.Decline(c.Request.Context(), c.Param("bookingID"))
	h.respondTransition(c, b, err)
}

// Start handles the tasker starting an accepted booking.
func (h *BookingHandler) Start(c *gin.Context) {
	b, err := h.Svc.Start(c.Request.Context(), c.Param("bookingID"))
	h.respondTransition(c, b, err)
}

// Complete handles the tasker finishing an in-progress booking.
func (h *BookingHandler) Complete(c *gin.Context) {
	var input struct {
		FinalPrice float64 `json:"final_price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	b, err := h.Svc.Complete(c.Request.Context(), c.Param("bookingID"), input.FinalPrice)
	h.respondTransition(c, b, err)
}

// Cancel handles customer or system cancellation.
func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.Svc.Cancel(c.Request.Context(), c.Param("bookingID"))
	h.respondTransition(c, b, err)
}

func (h *BookingHandler) respondTransition(c *gin.Context, b *models.Booking, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated to " + notification.StatusDisplay(b.Status),
		"booking": bookingView(b),
	})
}

// Stats returns a user's booking counts by status.
func (h *BookingHandler) Stats(c *gin.Context) {
	userID := c.Query("user_id")
	role := c.DefaultQuery("role", models.RoleCustomer)
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "user_id is required")
		return
	}

	stats, err := h.Svc.Stats(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Search filters a user's bookings by free text.
func (h *BookingHandler) Search(c *gin.Context) {
	userID := c.Query("user_id")
	role := c.DefaultQuery("role", models.RoleCustomer)
	query := c.Query("q")
	if userID == "" || query == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "user_id and q are required")
		return
	}

	bookings, err := h.Svc.Search(c.Request.Context(), userID, role, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookingViews(bookings)})
}

// Checkout records payment for a booking.
func (h *BookingHandler) Checkout(c *gin.Context) {
	var input struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Method == "" {
		input.Method = "card"
	}

	result, err := h.Svc.Checkout(c.Request.Context(), c.Param("bookingID"), input.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// bookingView decorates a booking with display fields the dashboards use.
func bookingView(b *models.Booking) gin.H {
	return gin.H{
		"booking":        b,
		"status_display": notification.StatusDisplay(b.Status),
		"can_cancel":     b.Status.CanTransitionTo(models.BookingCancelled),
		"can_accept":     b.Status == models.BookingPending,
		"can_start":      b.Status == models.BookingAccepted,
		"can_complete":   b.Status == models.BookingInProgress,
		"can_rate":       b.Status == models.BookingCompleted,
	}
}

func bookingViews(bookings []models.Booking) []gin.H {
	views := make([]gin.H, 0, len(bookings))
	for i := range bookings {
		views = append(views, bookingView(&bookings[i]))
	}
	return views
}
