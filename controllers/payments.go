package controllers

import (
	"net/http"

	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListSimPayments(c *gin.Context) {
	q := a.db.Order("due_date desc")
	if stationID := c.Query("station_id"); stationID != "" {
		q = q.Where("station_id = ?", stationID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	payments := []models.SimPayment{}
	if err := q.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (a *API) GetSimPayment(c *gin.Context) {
	var payment models.SimPayment
	if err := a.db.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (a *API) CreateSimPayment(c *gin.Context) {
	var payload models.SimPaymentCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var station models.Station
	if err := a.db.First(&station, "id = ?", payload.StationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	id := payload.ID
	if id == "" {
		id = newID("sim", 8)
	}

	payment := models.SimPayment{
		ID:          id,
		StationID:   payload.StationID,
		StationName: payload.StationName,
		SimNumber:   payload.SimNumber,
		Provider:    payload.Provider,
		Amount:      *payload.Amount,
		DueDate:     payload.DueDate,
		Status:      payload.Status,
		PaidDate:    payload.PaidDate,
		Notes:       payload.Notes,
	}
	if err := a.db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (a *API) UpdateSimPayment(c *gin.Context) {
	var payment models.SimPayment
	if err := a.db.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	var payload models.SimPaymentUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if payload.StationID != nil {
		payment.StationID = *payload.StationID
	}
	if payload.StationName != nil {
		payment.StationName = payload.StationName
	}
	if payload.SimNumber != nil {
		payment.SimNumber = *payload.SimNumber
	}
	if payload.Provider != nil {
		payment.Provider = *payload.Provider
	}
	if payload.Amount != nil {
		payment.Amount = *payload.Amount
	}
	if payload.DueDate != nil {
		payment.DueDate = *payload.DueDate
	}
	if payload.Status != nil {
		payment.Status = *payload.Status
	}
	if payload.PaidDate != nil {
		payment.PaidDate = payload.PaidDate
	}
	if payload.Notes != nil {
		payment.Notes = payload.Notes
	}

	if err := a.db.Save(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (a *API) DeleteSimPayment(c *gin.Context) {
	var payment models.SimPayment
	if err := a.db.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	if err := a.db.Delete(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}
	c.Status(http.StatusNoContent)
}
