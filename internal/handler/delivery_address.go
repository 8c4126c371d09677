package handler

import (
	"errors"
	"net/http"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeliveryAddressHandler exposes CRUD over delivery addresses.
type DeliveryAddressHandler struct {
	DB *gorm.DB
}

func NewDeliveryAddressHandler(db *gorm.DB) *DeliveryAddressHandler {
	return &DeliveryAddressHandler{DB: db}
}

type deliveryAddressReq struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	CityID     *uint  `json:"city_id"`
}

func (h *DeliveryAddressHandler) checkCityRef(c *gin.Context, cityID *uint) bool {
	if cityID == nil {
		return true
	}
	var n int64
	h.DB.Model(&models.City{}).Where("id = ?", *cityID).Count(&n)
	if n == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "city does not exist")
		return false
	}
	return true
}

func (h *DeliveryAddressHandler) Save(c *gin.Context) {
	var req deliveryAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateDeliveryAddress(req.Street, req.PostalCode); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if !h.checkCityRef(c, req.CityID) {
		return
	}

	addr := models.DeliveryAddress{
		Street:     req.Street,
		PostalCode: req.PostalCode,
		CityID:     req.CityID,
	}
	if err := h.DB.Create(&addr).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create delivery address failed")
		return
	}

	util.Created(c, util.Response{"delivery_address": addr})
}

func (h *DeliveryAddressHandler) List(c *gin.Context) {
	var addrs []models.DeliveryAddress
	if err := h.DB.Find(&addrs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list delivery addresses failed")
		return
	}
	util.Success(c, util.Response{"delivery_addresses": addrs})
}

func (h *DeliveryAddressHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var addr models.DeliveryAddress
	if err := h.DB.First(&addr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "delivery address not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get delivery address failed")
		}
		return
	}
	util.Success(c, util.Response{"delivery_address": addr})
}

func (h *DeliveryAddressHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req deliveryAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateDeliveryAddress(req.Street, req.PostalCode); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if !h.checkCityRef(c, req.CityID) {
		return
	}

	var addr models.DeliveryAddress
	if err := h.DB.First(&addr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "delivery address not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get delivery address failed")
		}
		return
	}

	addr.Street = req.Street
	addr.PostalCode = req.PostalCode
	addr.CityID = req.CityID
	if err := h.DB.Save(&addr).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update delivery address failed")
		return
	}

	util.Success(c, util.Response{"delivery_address": addr})
}

func (h *DeliveryAddressHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.DB.Delete(&models.DeliveryAddress{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete delivery address failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "delivery address not found")
		return
	}
	c.Status(http.StatusNoContent)
}
