package handler

import (
	"errors"
	"net/http"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TruckDriverHandler exposes CRUD over drivers.
type TruckDriverHandler struct {
	DB *gorm.DB
}

func NewTruckDriverHandler(db *gorm.DB) *TruckDriverHandler {
	return &TruckDriverHandler{DB: db}
}

type truckDriverReq struct {
	DNI     string  `json:"dni"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Salary  float64 `json:"salary"`
}

func (h *TruckDriverHandler) Save(c *gin.Context) {
	var req truckDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateTruckDriver(req.DNI, req.Name, req.Phone, req.Address); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	driver := models.TruckDriver{
		DNI:     req.DNI,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Salary:  req.Salary,
	}
	if err := h.DB.Create(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "dni already registered")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create truck driver failed")
		return
	}

	util.Created(c, util.Response{"truck_driver": driver})
}

func (h *TruckDriverHandler) List(c *gin.Context) {
	var drivers []models.TruckDriver
	if err := h.DB.Find(&drivers).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list truck drivers failed")
		return
	}
	util.Success(c, util.Response{"truck_drivers": drivers})
}

func (h *TruckDriverHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var driver models.TruckDriver
	if err := h.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "truck driver not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get truck driver failed")
		}
		return
	}
	util.Success(c, util.Response{"truck_driver": driver})
}

func (h *TruckDriverHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req truckDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateTruckDriver(req.DNI, req.Name, req.Phone, req.Address); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var driver models.TruckDriver
	if err := h.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "truck driver not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get truck driver failed")
		}
		return
	}

	driver.DNI = req.DNI
	driver.Name = req.Name
	driver.Phone = req.Phone
	driver.Address = req.Address
	driver.Salary = req.Salary
	if err := h.DB.Save(&driver).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update truck driver failed")
		return
	}

	util.Success(c, util.Response{"truck_driver": driver})
}

func (h *TruckDriverHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.DB.Delete(&models.TruckDriver{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete truck driver failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "truck driver not found")
		return
	}
	c.Status(http.StatusNoContent)
}
