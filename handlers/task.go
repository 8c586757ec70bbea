package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	taskRepo "taskhive/database/repository/task"
	"taskhive/models"
	"taskhive/utils"
)

// TaskHandler serves task CRUD endpoints.
type TaskHandler struct {
	Repo taskRepo.TaskRepository
}

func NewTaskHandler(repo taskRepo.TaskRepository) *TaskHandler {
	return &TaskHandler{Repo: repo}
}

// Create records a customer's service request.
func (h *TaskHandler) Create(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		CustomerID  string `json:"customer_id" binding:"required"`
		ServiceID   string `json:"service_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	task := &models.Task{
		ID:          uuid.New().String(),
		CustomerID:  input.CustomerID,
		Title:       input.Title,
		Description: input.Description,
		ServiceID:   input.ServiceID,
		Status:      "open",
		CreatedAt:   time.Now(),
	}
	if err := h.Repo.Create(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Task created", "task": task})
}

// List returns a customer's tasks.
func (h *TaskHandler) List(c *gin.Context) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "customer_id is required")
		return
	}

	tasks, err := h.Repo.GetByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Update patches task fields.
func (h *TaskHandler) Update(c *gin.Context) {
	var input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if len(set) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "no fields to update")
		return
	}

	if err := h.Repo.Update(c.Request.Context(), c.Param("taskID"), set); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}
