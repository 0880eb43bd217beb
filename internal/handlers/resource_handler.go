package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studyhub/studyhub-api/internal/models"
	"github.com/studyhub/studyhub-api/internal/store"
)

type ResourceHandler struct {
	Store store.Store
}

func NewResourceHandler(s store.Store) *ResourceHandler {
	return &ResourceHandler{Store: s}
}

func (h *ResourceHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/resources", h.Create)
	rg.GET("/resources", h.List)
	rg.DELETE("/resources/:id", h.Delete)
}

// Create godoc
// @Summary Add a learning resource
// @Accept json
// @Produce json
// @Param resource body models.Resource true "Resource"
// @Success 201 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	var in models.Resource
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Store.Insert(c.Request.Context(), models.ResourceCollection, in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// List godoc
// @Summary List resources, optionally for one topic
// @Produce json
// @Param topic query string false "Exact topic"
// @Success 200 {array} models.Resource
// @Router /api/resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	filter := bson.M{}
	if topic := c.Query("topic"); topic != "" {
		filter["topic"] = topic
	}
	rows := []models.Resource{}
	if err := h.Store.FindMany(c.Request.Context(), models.ResourceCollection, filter, &rows); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Delete godoc
// @Summary Delete a resource
// @Produce json
// @Param id path string true "Resource id"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Store.DeleteByID(c.Request.Context(), models.ResourceCollection, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
