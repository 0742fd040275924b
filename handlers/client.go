package handlers

import (
	"net/http"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/services/client"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
)

// CreateClientHandler inserts a new client record.
func CreateClientHandler(svc client.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Client
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		created, err := svc.CreateClient(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// GetClientHandler fetches one client by ID.
func GetClientHandler(svc client.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cl, err := svc.GetClient(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cl)
	}
}

// ListClientsHandler returns one page of clients.
func ListClientsHandler(svc client.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		result, err := svc.ListClients(c.Request.Context(), page, limit, c.Query("search"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UpdateClientHandler replaces a client's stored fields.
func UpdateClientHandler(svc client.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Client
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		input.ID = c.Param("id")
		updated, err := svc.UpdateClient(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteClientHandler removes a client by ID.
func DeleteClientHandler(svc client.ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
	}
}
