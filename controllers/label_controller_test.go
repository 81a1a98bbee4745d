package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/stretchr/testify/assert"
)

func labelRouter() *gin.Engine {
	router := gin.New()
	router.POST("/labels", CreateLabel)
	router.GET("/labels", ListLabels)
	router.DELETE("/labels/:id", DeleteLabel)
	return router
}

func TestCreateLabel(t *testing.T) {
	setupTestDB(t)
	router := labelRouter()

	w := performRequest(router, "POST", "/labels", gin.H{"name": "Urgente"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Urgente", dataObject(t, w)["name"])

	w = performRequest(router, "POST", "/labels", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestListAndDeleteLabels(t *testing.T) {
	db := setupTestDB(t)
	router := labelRouter()

	mustCreate(t, db, &models.Label{Name: "Urgente"})
	mustCreate(t, db, &models.Label{Name: "Garanzia"})

	w := performRequest(router, "GET", "/labels", nil)
	labels := dataArray(t, w)
	assert.Len(t, labels, 2)
	first := labels[0].(map[string]interface{})
	assert.Equal(t, "Garanzia", first["name"])

	w = performRequest(router, "DELETE", "/labels/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "DELETE", "/labels/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletedLabelLeavesInterventionRow(t *testing.T) {
	db := setupTestDB(t)
	labelRouterInstance := labelRouter()
	interventions := interventionRouter()

	client := &models.Client{Name: "Rossi", Address: "Via Roma 1", Phone: "333", Email: "r@x.it"}
	mustCreate(t, db, client)
	label := &models.Label{Name: "Urgente"}
	mustCreate(t, db, label)
	mustCreate(t, db, &models.Intervention{
		ClientID: client.ID, Type: "Manutenzione", Date: "2024-01-05", Duration: 1, Cost: 50, LabelID: &label.ID,
	})

	w := performRequest(labelRouterInstance, "DELETE", "/labels/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The intervention survives; its label name just resolves to nothing
	w = performRequest(interventions, "GET", "/interventions", nil)
	rows := dataArray(t, w)
	assert.Len(t, rows, 1)
	first := rows[0].(map[string]interface{})
	_, hasLabelName := first["label_name"]
	assert.False(t, hasLabelName)
}
