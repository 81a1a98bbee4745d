package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database, migrates every model and wires
// it as the active connection for the handlers under test
func setupTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	config.SetDB(db)
	return db
}

// performRequest runs one HTTP request through the router. A non-nil body
// is marshalled as JSON.
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseResponse decodes the JSON response envelope
func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response body: %v (body: %s)", err, w.Body.String())
	}
	return body
}

// errorCode extracts error.code from a failure envelope
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	body := parseResponse(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %s", w.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// errorMessage extracts error.message from a failure envelope
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	body := parseResponse(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %s", w.Body.String())
	}
	message, _ := errObj["message"].(string)
	return message
}

// dataObject extracts data as an object from a success envelope
func dataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	body := parseResponse(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no data object: %s", w.Body.String())
	}
	return data
}

// dataArray extracts data as an array from a success envelope
func dataArray(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	body := parseResponse(t, w)
	data, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("Response has no data array: %s", w.Body.String())
	}
	return data
}

func mustCreate(t *testing.T, db *gorm.DB, record interface{}) {
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to seed record: %v", err)
	}
}
