package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	profileRepo "taskhive/database/repository/profile"
	"taskhive/models"
	"taskhive/utils"
)

// ProfileHandler serves registration, login and profile endpoints.
type ProfileHandler struct {
	Repo profileRepo.ProfileRepository
}

func NewProfileHandler(repo profileRepo.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

type registerInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	// Tasker-only fields.
	Skills     []string `json:"skills"`
	HourlyRate float64  `json:"hourly_rate"`
	Bio        string   `json:"bio"`
}

// RegisterCustomer creates a customer profile.
func (h *ProfileHandler) RegisterCustomer(c *gin.Context) {
	h.register(c, models.RoleCustomer)
}

// RegisterTasker creates a tasker profile.
func (h *ProfileHandler) RegisterTasker(c *gin.Context) {
	h.register(c, models.RoleTasker)
}

func (h *ProfileHandler) register(c *gin.Context, role string) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if _, err := h.Repo.GetByEmail(c.Request.Context(), input.Email); err == nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	profile := &models.Profile{
		ID:           uuid.New().String(),
		Role:         role,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		PasswordHash: string(hash),
		Bio:          input.Bio,
		CreatedAt:    time.Now(),
	}
	if role == models.RoleTasker {
		profile.Skills = input.Skills
		profile.HourlyRate = input.HourlyRate
		profile.IsAvailable = true
	}

	if err := h.Repo.Create(c.Request.Context(), profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": role + " registered",
		"user_id": profile.ID,
	})
}

// Login verifies credentials and issues a JWT.
func (h *ProfileHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	profile, err := h.Repo.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "login failed", "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "login failed", "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(profile.ID, profile.Role, 24*time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"user_id":   profile.ID,
		"user_name": profile.Name,
		"role":      profile.Role,
		"token":     token,
	})
}

// Get returns a profile by id.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.Repo.GetByID(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update patches mutable profile fields.
func (h *ProfileHandler) Update(c *gin.Context) {
	var input struct {
		Name        *string   `json:"name"`
		Phone       *string   `json:"phone"`
		Address     *string   `json:"address"`
		Bio         *string   `json:"bio"`
		HourlyRate  *float64  `json:"hourly_rate"`
		Skills      *[]string `json:"skills"`
		IsAvailable *bool     `json:"is_available"`
		FCMToken    *string   `json:"fcm_token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Bio != nil {
		set["bio"] = *input.Bio
	}
	if input.HourlyRate != nil {
		set["hourly_rate"] = *input.HourlyRate
	}
	if input.Skills != nil {
		set["skills"] = *input.Skills
	}
	if input.IsAvailable != nil {
		set["is_available"] = *input.IsAvailable
	}
	if input.FCMToken != nil {
		set["fcm_token"] = *input.FCMToken
	}
	if len(set) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "no fields to update")
		return
	}

	if err := h.Repo.Update(c.Request.Context(), c.Param("profileID"), set); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// Taskers lists available taskers, optionally filtered by skill.
func (h *ProfileHandler) Taskers(c *gin.Context) {
	taskers, err := h.Repo.GetTaskers(c.Request.Context(), c.Query("skill"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"taskers": taskers})
}
