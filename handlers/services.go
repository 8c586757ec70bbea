package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhive/services/catalog"
	"taskhive/utils"
)

// ServiceHandler exposes the service catalog.
type ServiceHandler struct {
	Catalog *catalog.Catalog
}

func NewServiceHandler(cat *catalog.Catalog) *ServiceHandler {
	return &ServiceHandler{Catalog: cat}
}

// List returns every bookable service definition.
func (h *ServiceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services()})
}

// Get returns a single service definition by id.
func (h *ServiceHandler) Get(c *gin.Context) {
	def, ok := h.Catalog.Get(c.Param("serviceID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", c.Param("serviceID"))
		return
	}
	c.JSON(http.StatusOK, def)
}
