package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler produces downloadable reports of the pack table.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var packExportHeader = []string{"id", "description", "destination_address", "truck_driver", "city"}

func (h *ExportHandler) loadPacks() ([]models.Pack, error) {
	var packs []models.Pack
	err := h.DB.Preload("TruckDriver").Preload("City").Find(&packs).Error
	return packs, err
}

func packExportRow(p models.Pack) []string {
	driver, city := "", ""
	if p.TruckDriver != nil {
		driver = p.TruckDriver.Name
	}
	if p.City != nil {
		city = p.City.Name
	}
	return []string{
		strconv.FormatUint(uint64(p.ID), 10),
		p.Description,
		p.DestinationAddress,
		driver,
		city,
	}
}

// ExportPacksCSV streams all packs as a CSV attachment.
func (h *ExportHandler) ExportPacksCSV(c *gin.Context) {
	packs, err := h.loadPacks()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "load packs failed")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="packs.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(packExportHeader)
	for _, p := range packs {
		_ = w.Write(packExportRow(p))
	}
	w.Flush()
}

// ExportPacksXLSX streams all packs as an XLSX attachment.
func (h *ExportHandler) ExportPacksXLSX(c *gin.Context) {
	packs, err := h.loadPacks()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "load packs failed")
		return
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Packs"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "build workbook failed")
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, name := range packExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, name)
	}
	for row, p := range packs {
		for col, value := range packExportRow(p) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="packs.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		// headers already sent; nothing sensible left to report
		_ = c.Error(fmt.Errorf("write workbook: %w", err))
	}
}
