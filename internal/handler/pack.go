package handler

import (
	"errors"
	"net/http"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PackHandler exposes CRUD over deliverable packs.
type PackHandler struct {
	DB *gorm.DB
}

func NewPackHandler(db *gorm.DB) *PackHandler {
	return &PackHandler{DB: db}
}

type packReq struct {
	Description        string `json:"description"`
	DestinationAddress string `json:"destination_address"`
	TruckDriverID      *uint  `json:"truck_driver_id"`
	CityID             *uint  `json:"city_id"`
}

// checkPackRefs verifies that the referenced driver and city exist.
func (h *PackHandler) checkPackRefs(c *gin.Context, req packReq) bool {
	if req.TruckDriverID != nil {
		var n int64
		h.DB.Model(&models.TruckDriver{}).Where("id = ?", *req.TruckDriverID).Count(&n)
		if n == 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "truck driver does not exist")
			return false
		}
	}
	if req.CityID != nil {
		var n int64
		h.DB.Model(&models.City{}).Where("id = ?", *req.CityID).Count(&n)
		if n == 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "city does not exist")
			return false
		}
	}
	return true
}

func (h *PackHandler) Save(c *gin.Context) {
	var req packReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidatePack(req.Description, req.DestinationAddress); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if !h.checkPackRefs(c, req) {
		return
	}

	pack := models.Pack{
		Description:        req.Description,
		DestinationAddress: req.DestinationAddress,
		TruckDriverID:      req.TruckDriverID,
		CityID:             req.CityID,
	}
	if err := h.DB.Create(&pack).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create pack failed")
		return
	}

	util.Created(c, util.Response{"pack": pack})
}

func (h *PackHandler) List(c *gin.Context) {
	var packs []models.Pack
	if err := h.DB.Find(&packs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list packs failed")
		return
	}
	util.Success(c, util.Response{"packs": packs})
}

func (h *PackHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var pack models.Pack
	if err := h.DB.First(&pack, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "pack not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get pack failed")
		}
		return
	}
	util.Success(c, util.Response{"pack": pack})
}

func (h *PackHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req packReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidatePack(req.Description, req.DestinationAddress); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if !h.checkPackRefs(c, req) {
		return
	}

	var pack models.Pack
	if err := h.DB.First(&pack, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "pack not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get pack failed")
		}
		return
	}

	pack.Description = req.Description
	pack.DestinationAddress = req.DestinationAddress
	pack.TruckDriverID = req.TruckDriverID
	pack.CityID = req.CityID
	if err := h.DB.Save(&pack).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update pack failed")
		return
	}

	util.Success(c, util.Response{"pack": pack})
}

func (h *PackHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.DB.Delete(&models.Pack{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete pack failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "pack not found")
		return
	}
	c.Status(http.StatusNoContent)
}
