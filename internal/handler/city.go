package handler

import (
	"errors"
	"net/http"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CityHandler exposes CRUD over served cities.
type CityHandler struct {
	DB *gorm.DB
}

func NewCityHandler(db *gorm.DB) *CityHandler {
	return &CityHandler{DB: db}
}

type cityReq struct {
	Name string `json:"name"`
}

func (h *CityHandler) Save(c *gin.Context) {
	var req cityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateCity(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	city := models.City{Name: req.Name}
	if err := h.DB.Create(&city).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create city failed")
		return
	}

	util.Created(c, util.Response{"city": city})
}

func (h *CityHandler) List(c *gin.Context) {
	var cities []models.City
	if err := h.DB.Find(&cities).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list cities failed")
		return
	}
	util.Success(c, util.Response{"cities": cities})
}

func (h *CityHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var city models.City
	if err := h.DB.First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "city not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get city failed")
		}
		return
	}
	util.Success(c, util.Response{"city": city})
}

func (h *CityHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req cityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateCity(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var city models.City
	if err := h.DB.First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "city not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get city failed")
		}
		return
	}

	city.Name = req.Name
	if err := h.DB.Save(&city).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update city failed")
		return
	}

	util.Success(c, util.Response{"city": city})
}

func (h *CityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.DB.Delete(&models.City{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete city failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "city not found")
		return
	}
	c.Status(http.StatusNoContent)
}
