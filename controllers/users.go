package controllers

import (
	"errors"
	"net/http"

	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (a *API) ListUsers(c *gin.Context) {
	users := []models.User{}
	if err := a.db.Order("username").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (a *API) GetUser(c *gin.Context) {
	var user models.User
	if err := a.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *API) CreateUser(c *gin.Context) {
	var payload models.UserCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	id := payload.ID
	if id == "" {
		id = newID("user", 8)
	}

	var existing models.User
	err := a.db.First(&existing, "id = ?", id).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check user"})
		return
	}

	enabled := true
	if payload.IsEnabled != nil {
		enabled = *payload.IsEnabled
	}
	permitted := payload.PermittedStationIDs
	if permitted == nil {
		permitted = []string{}
	}

	user := models.User{
		ID:                  id,
		Username:            payload.Username,
		Password:            payload.Password,
		Role:                payload.Role,
		FullName:            payload.FullName,
		Email:               payload.Email,
		IsEnabled:           enabled,
		PermittedStationIDs: permitted,
	}
	// A username collision surfaces as a unique-constraint error.
	if err := a.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (a *API) UpdateUser(c *gin.Context) {
	var user models.User
	if err := a.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payload models.UserUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if payload.Username != nil {
		user.Username = *payload.Username
	}
	if payload.Password != nil {
		user.Password = *payload.Password
	}
	if payload.Role != nil {
		user.Role = *payload.Role
	}
	if payload.FullName != nil {
		user.FullName = *payload.FullName
	}
	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.IsEnabled != nil {
		user.IsEnabled = *payload.IsEnabled
	}
	if payload.PermittedStationIDs != nil {
		user.PermittedStationIDs = *payload.PermittedStationIDs
	}

	if err := a.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *API) DeleteUser(c *gin.Context) {
	var user models.User
	if err := a.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := a.db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}
