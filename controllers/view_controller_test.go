package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
	"github.com/stretchr/testify/assert"
)

func viewRouter() *gin.Engine {
	router := gin.New()
	router.GET("/views/:view", GetView)
	return router
}

func TestGetViewUnknown(t *testing.T) {
	setupTestDB(t)
	router := viewRouter()

	w := performRequest(router, "GET", "/views/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_VIEW", errorCode(t, w))
}

func TestGetViewDashboard(t *testing.T) {
	db := setupTestDB(t)
	router := viewRouter()

	client := &models.Client{Name: "Rossi", Address: "Via Roma 1", Phone: "333", Email: "r@x.it"}
	mustCreate(t, db, client)
	mustCreate(t, db, &models.Intervention{ClientID: client.ID, Type: "Manutenzione", Date: "2024-01-05", Duration: 2, Cost: 100})

	w := performRequest(router, "GET", "/views/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataObject(t, w)
	state := data["state"].(map[string]interface{})
	assert.Equal(t, "dashboard", state["view"])
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, 1.0, summary["total_interventions"])
}

func TestGetViewEchoesFilterAndPage(t *testing.T) {
	db := setupTestDB(t)
	router := viewRouter()

	client := &models.Client{Name: "Rossi", Address: "Via Roma 1", Phone: "333", Email: "r@x.it"}
	mustCreate(t, db, client)
	mustCreate(t, db, &models.Intervention{ClientID: client.ID, Type: "Manutenzione", Date: "2024-01-05", Duration: 2, Cost: 100})
	mustCreate(t, db, &models.Intervention{ClientID: client.ID, Type: "Riparazione", Date: "2024-01-20", Duration: 1, Cost: 50})

	w := performRequest(router, "GET", "/views/intervention-list?type=Manutenzione&page=1&theme=dark", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataObject(t, w)
	assert.Len(t, data["interventions"].([]interface{}), 1)

	state := data["state"].(map[string]interface{})
	assert.Equal(t, 1.0, state["page"])
	assert.Equal(t, "dark", state["theme"])
	filter := state["filter"].(map[string]interface{})
	assert.Equal(t, "Manutenzione", filter["type"])
}

func TestGetViewEveryKnownView(t *testing.T) {
	setupTestDB(t)
	router := viewRouter()

	for _, view := range services.AllViews {
		t.Run(string(view), func(t *testing.T) {
			w := performRequest(router, "GET", "/views/"+string(view), nil)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
