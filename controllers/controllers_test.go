package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Iliketoeatsalmon/WiMaRC/controllers"
	"github.com/Iliketoeatsalmon/WiMaRC/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := controllers.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	controllers.New(db).Register(r)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
}

func seedStation(t *testing.T, db *gorm.DB, id string) models.Station {
	t.Helper()
	station := models.Station{
		ID:          id,
		Name:        "Test Station " + id,
		Type:        "weather",
		Latitude:    12.5,
		Longitude:   101.9,
		Status:      "online",
		Area:        "จันทบุรี",
		Description: "test fixture",
	}
	if err := db.Create(&station).Error; err != nil {
		t.Fatalf("seed station: %v", err)
	}
	return station
}

func seedUser(t *testing.T, db *gorm.DB, id, username, password string, enabled bool) models.User {
	t.Helper()
	user := models.User{
		ID:                  id,
		Username:            username,
		Password:            password,
		Role:                "User",
		FullName:            "Test User",
		Email:               username + "@example.com",
		IsEnabled:           enabled,
		PermittedStationIDs: []string{},
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
