package handlers

import (
	"net/http"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/services/driver"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
)

// CreateDriverHandler inserts a new driver record.
func CreateDriverHandler(svc driver.DriverService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Driver
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		created, err := svc.CreateDriver(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// GetDriverHandler fetches one driver by ID.
func GetDriverHandler(svc driver.DriverService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.GetDriver(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

// ListDriversHandler returns one page of drivers.
func ListDriversHandler(svc driver.DriverService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		result, err := svc.ListDrivers(c.Request.Context(), page, limit, c.Query("search"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UpdateDriverHandler replaces a driver's stored fields.
func UpdateDriverHandler(svc driver.DriverService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Driver
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		input.ID = c.Param("id")
		updated, err := svc.UpdateDriver(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteDriverHandler removes a driver by ID.
func DeleteDriverHandler(svc driver.DriverService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
	}
}
