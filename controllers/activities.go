package controllers

import (
	"net/http"

	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListActivities(c *gin.Context) {
	q := a.db.Order("date desc")
	if stationID := c.Query("station_id"); stationID != "" {
		q = q.Where("station_id = ?", stationID)
	}

	activities := []models.PlotActivity{}
	if err := q.Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// CreateActivity inserts a log entry. The referenced station is trusted,
// not checked; created_at is set here and never touched again.
func (a *API) CreateActivity(c *gin.Context) {
	var payload models.PlotActivityCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id := payload.ID
	if id == "" {
		id = newID("activity", 12)
	}
	images := payload.Images
	if images == nil {
		images = []string{}
	}

	activity := models.PlotActivity{
		ID:            id,
		StationID:     payload.StationID,
		Date:          payload.Date,
		ActivityType:  payload.ActivityType,
		Description:   payload.Description,
		CreatedBy:     payload.CreatedBy,
		CreatedByName: payload.CreatedByName,
		Images:        images,
	}
	if err := a.db.Create(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (a *API) UpdateActivity(c *gin.Context) {
	var activity models.PlotActivity
	if err := a.db.First(&activity, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	var payload models.PlotActivityUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if payload.StationID != nil {
		activity.StationID = *payload.StationID
	}
	if payload.Date != nil {
		activity.Date = *payload.Date
	}
	if payload.ActivityType != nil {
		activity.ActivityType = *payload.ActivityType
	}
	if payload.Description != nil {
		activity.Description = *payload.Description
	}
	if payload.CreatedByName != nil {
		activity.CreatedByName = *payload.CreatedByName
	}
	if payload.Images != nil {
		activity.Images = *payload.Images
	}

	if err := a.db.Save(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (a *API) DeleteActivity(c *gin.Context) {
	var activity models.PlotActivity
	if err := a.db.First(&activity, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	if err := a.db.Delete(&activity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}
	c.Status(http.StatusNoContent)
}
