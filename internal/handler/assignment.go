package handler

import (
	"errors"
	"net/http"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AssignmentHandler manages which truck a driver operates on a date.
type AssignmentHandler struct {
	DB *gorm.DB
}

func NewAssignmentHandler(db *gorm.DB) *AssignmentHandler {
	return &AssignmentHandler{DB: db}
}

type assignmentReq struct {
	TruckDriverID uint   `json:"truck_driver_id"`
	TruckID       uint   `json:"truck_id"`
	Date          string `json:"date"` // YYYY-MM-DD
}

// resolve validates the request and checks both referenced rows exist.
func (h *AssignmentHandler) resolve(c *gin.Context, req assignmentReq) (*models.TruckDriverTruck, bool) {
	if req.TruckDriverID == 0 || req.TruckID == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "truck_driver_id and truck_id are required")
		return nil, false
	}
	date, err := util.ParseAssignmentDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return nil, false
	}

	var n int64
	h.DB.Model(&models.TruckDriver{}).Where("id = ?", req.TruckDriverID).Count(&n)
	if n == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "truck driver does not exist")
		return nil, false
	}
	h.DB.Model(&models.Truck{}).Where("id = ?", req.TruckID).Count(&n)
	if n == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "truck does not exist")
		return nil, false
	}

	return &models.TruckDriverTruck{
		TruckDriverID: req.TruckDriverID,
		TruckID:       req.TruckID,
		Date:          date,
	}, true
}

// Assign books a truck for a driver on a date. A driver can hold only
// one assignment per date.
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req assignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	assignment, ok := h.resolve(c, req)
	if !ok {
		return
	}

	if err := h.DB.Create(assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "driver already assigned for that date")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create assignment failed")
		return
	}

	util.Created(c, util.Response{"assignment": assignment})
}

func (h *AssignmentHandler) List(c *gin.Context) {
	var assignments []models.TruckDriverTruck
	if err := h.DB.Find(&assignments).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list assignments failed")
		return
	}
	util.Success(c, util.Response{"assignments": assignments})
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var assignment models.TruckDriverTruck
	if err := h.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "assignment not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get assignment failed")
		}
		return
	}
	util.Success(c, util.Response{"assignment": assignment})
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req assignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	updated, ok := h.resolve(c, req)
	if !ok {
		return
	}

	var assignment models.TruckDriverTruck
	if err := h.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "assignment not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get assignment failed")
		}
		return
	}

	assignment.TruckDriverID = updated.TruckDriverID
	assignment.TruckID = updated.TruckID
	assignment.Date = updated.Date
	if err := h.DB.Save(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "driver already assigned for that date")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update assignment failed")
		return
	}

	util.Success(c, util.Response{"assignment": assignment})
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.DB.Delete(&models.TruckDriverTruck{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete assignment failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "assignment not found")
		return
	}
	c.Status(http.StatusNoContent)
}
