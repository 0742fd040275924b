package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pwnz15/backend-sld/models"
	"github.com/pwnz15/backend-sld/services/invoice"
	"github.com/pwnz15/backend-sld/utils"

	"github.com/gin-gonic/gin"
)

// CreateInvoiceHandler creates an invoice on behalf of the authenticated user.
func CreateInvoiceHandler(svc invoice.InvoiceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		var input invoice.CreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		input.UserID = userID.(string)
		created, err := svc.CreateInvoice(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// GetInvoiceHandler fetches one invoice by ID.
func GetInvoiceHandler(svc invoice.InvoiceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		inv, err := svc.GetInvoice(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, inv)
	}
}

// searchFilters builds invoice search filters from query parameters. Dates are
// RFC 3339; unparsable values are ignored.
func searchFilters(c *gin.Context) models.InvoiceSearchFilters {
	filters := models.InvoiceSearchFilters{
		Status:        models.InvoiceStatus(c.Query("status")),
		PaymentStatus: models.PaymentStatus(c.Query("paymentStatus")),
		ClientID:      c.Query("clientId"),
		UserID:        c.Query("userId"),
	}
	if v := c.Query("startDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.StartDate = &t
		}
	}
	if v := c.Query("endDate"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filters.EndDate = &t
		}
	}
	filters.MinAmount, _ = strconv.ParseFloat(c.Query("minAmount"), 64)
	filters.MaxAmount, _ = strconv.ParseFloat(c.Query("maxAmount"), 64)
	return filters
}

// SearchInvoicesHandler returns one page of invoices matching the filters.
func SearchInvoicesHandler(svc invoice.InvoiceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		result, err := svc.SearchInvoices(c.Request.Context(), page, limit, searchFilters(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// UpdateInvoiceHandler applies a partial patch to an invoice.
func UpdateInvoiceHandler(svc invoice.InvoiceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
			return
		}
		var input invoice.UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		updated, err := svc.UpdateInvoice(c.Request.Context(), c.Param("id"), input, userID.(string))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteInvoiceHandler removes a draft invoice.
func DeleteInvoiceHandler(svc invoice.InvoiceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
	}
}
