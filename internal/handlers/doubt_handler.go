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

type DoubtHandler struct {
	Store store.Store
}

func NewDoubtHandler(s store.Store) *DoubtHandler {
	return &DoubtHandler{Store: s}
}

func (h *DoubtHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/doubts", h.Create)
	rg.GET("/doubts", h.List)
	rg.PATCH("/doubts/:id", h.Answer)
}

// Create godoc
// @Summary Submit a question
// @Accept json
// @Produce json
// @Param doubt body models.Doubt true "Doubt"
// @Success 201 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/doubts [post]
func (h *DoubtHandler) Create(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	var in models.Doubt
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if in.Status == "" {
		in.Status = models.StatusOpen
	}
	id, err := h.Store.Insert(c.Request.Context(), models.DoubtCollection, in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// List godoc
// @Summary List questions, optionally by status
// @Produce json
// @Param status query string false "Exact status (open or answered)"
// @Success 200 {array} models.Doubt
// @Router /api/doubts [get]
func (h *DoubtHandler) List(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	rows := []models.Doubt{}
	if err := h.Store.FindMany(c.Request.Context(), models.DoubtCollection, filter, &rows); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Answer godoc
// @Summary Answer a question
// @Description Records the answer and moves the doubt to "answered". The
// @Description transition is one-way; concurrent answers are last-write-wins.
// @Accept json
// @Produce json
// @Param id path string true "Doubt id"
// @Param payload body models.AnswerPayload true "Answer"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/doubts/{id} [patch]
func (h *DoubtHandler) Answer(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in models.AnswerPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	set := bson.M{
		"answer":      in.Answer,
		"answered_by": in.AnsweredBy,
		"status":      models.StatusAnswered,
	}
	if err := h.Store.UpdateByID(c.Request.Context(), models.DoubtCollection, oid, set); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
