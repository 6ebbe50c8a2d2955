package controllers

import (
	"net/http"

	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"github.com/gin-gonic/gin"
)

// Login checks the supplied credentials against the stored ones and
// returns the user record on success. Disabled accounts get the same
// 401 as wrong credentials. Passwords are compared as stored; no token
// is issued and no other endpoint checks identity.
func (a *API) Login(c *gin.Context) {
	var payload models.AuthLogin
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var user models.User
	err := a.db.
		Where("username = ? AND password = ? AND is_enabled = ?", payload.Username, payload.Password, true).
		First(&user).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, user)
}
