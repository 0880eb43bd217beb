package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studyhub/studyhub-api/internal/models"
	"github.com/studyhub/studyhub-api/internal/store"
)

type TimetableHandler struct {
	Store store.Store
}

func NewTimetableHandler(s store.Store) *TimetableHandler {
	return &TimetableHandler{Store: s}
}

func (h *TimetableHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/timetable", h.Create)
	rg.GET("/timetable", h.List)
	rg.GET("/timetable/export", h.Export)
	rg.DELETE("/timetable/:id", h.Delete)
}

// Create godoc
// @Summary Add a timetable entry
// @Accept json
// @Produce json
// @Param entry body models.Timetable true "Timetable entry"
// @Success 201 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/timetable [post]
func (h *TimetableHandler) Create(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	var in models.Timetable
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Store.Insert(c.Request.Context(), models.TimetableCollection, in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// List godoc
// @Summary List timetable entries, optionally for one day
// @Produce json
// @Param day query string false "Exact weekday name"
// @Success 200 {array} models.Timetable
// @Router /api/timetable [get]
func (h *TimetableHandler) List(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	filter := bson.M{}
	if day := c.Query("day"); day != "" {
		filter["day"] = day
	}
	rows := []models.Timetable{}
	if err := h.Store.FindMany(c.Request.Context(), models.TimetableCollection, filter, &rows); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Delete godoc
// @Summary Delete a timetable entry
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/timetable/{id} [delete]
func (h *TimetableHandler) Delete(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Store.DeleteByID(c.Request.Context(), models.TimetableCollection, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

var weekdayOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// Export godoc
// @Summary Download the full timetable as an Excel workbook
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200
// @Router /api/timetable/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	if !available(c, h.Store) {
		return
	}
	rows := []models.Timetable{}
	if err := h.Store.FindMany(c.Request.Context(), models.TimetableCollection, bson.M{}, &rows); err != nil {
		storeError(c, err)
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if weekdayOrder[rows[i].Day] != weekdayOrder[rows[j].Day] {
			return weekdayOrder[rows[i].Day] < weekdayOrder[rows[j].Day]
		}
		return rows[i].StartTime < rows[j].StartTime
	})

	f := excelize.NewFile()
	sheet := "Timetable"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Day", "Subject", "Start", "End", "Location", "Notes"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.Day)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.Subject)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.StartTime)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), row.EndTime)
		if row.Location != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", r), *row.Location)
		}
		if row.Notes != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", r), *row.Notes)
		}
	}

	for col := 1; col <= len(headers); col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(sheet, colName, colName, 18)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="timetable.xlsx"`)
	c.Writer.Write(buf.Bytes())
}
