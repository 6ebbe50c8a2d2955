package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// API holds the handles shared by every request handler. The database
// connection is opened once in main and injected here; handlers keep no
// state of their own.
type API struct {
	db  *gorm.DB
	hub *Hub
}

func New(db *gorm.DB) *API {
	return &API{db: db, hub: NewHub()}
}

// Register wires every route onto r.
func (a *API) Register(r gin.IRouter) {
	r.GET("/health", a.Health)
	r.POST("/auth/login", a.Login)
	r.GET("/ws", a.HandleWebSocket)

	r.GET("/stations", a.ListStations)
	r.POST("/stations", a.CreateStation)
	r.GET("/stations/:id", a.GetStation)
	r.PUT("/stations/:id", a.UpdateStation)
	r.DELETE("/stations/:id", a.DeleteStation)
	r.GET("/stations/:id/images/latest", a.LatestStationImage)
	r.GET("/stations/:id/forecast", a.ListForecasts)
	r.GET("/stations/:id/readings", a.ListReadings)
	r.POST("/stations/:id/readings", a.CreateReading)
	r.GET("/stations/:id/readings/export", a.ExportReadingsCSV)

	r.GET("/activities", a.ListActivities)
	r.POST("/activities", a.CreateActivity)
	r.PUT("/activities/:id", a.UpdateActivity)
	r.DELETE("/activities/:id", a.DeleteActivity)

	r.GET("/users", a.ListUsers)
	r.POST("/users", a.CreateUser)
	r.GET("/users/:id", a.GetUser)
	r.PUT("/users/:id", a.UpdateUser)
	r.DELETE("/users/:id", a.DeleteUser)

	r.GET("/sim-payments", a.ListSimPayments)
	r.POST("/sim-payments", a.CreateSimPayment)
	r.GET("/sim-payments/:id", a.GetSimPayment)
	r.PUT("/sim-payments/:id", a.UpdateSimPayment)
	r.DELETE("/sim-payments/:id", a.DeleteSimPayment)
}

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// newID builds ids like "station-1f2e3d4c": a resource prefix plus the
// first n hex characters of a random UUID.
func newID(prefix string, n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + hex[:n]
}
