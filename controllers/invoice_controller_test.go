package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func invoiceRouter() *gin.Engine {
	router := gin.New()
	router.POST("/invoices", GenerateInvoice)
	router.POST("/invoices/preview", PreviewInvoice)
	router.GET("/invoices/archive/url", GetArchivedInvoiceURL)
	return router
}

func seedInvoiceData(t *testing.T, db *gorm.DB) *models.Client {
	client := &models.Client{Name: "Rossi", Address: "Via Roma 1", Phone: "333", Email: "r@x.it"}
	mustCreate(t, db, client)
	mustCreate(t, db, &models.Intervention{ClientID: client.ID, Type: "Manutenzione", Date: "2024-01-05", Duration: 2, Cost: 100})
	mustCreate(t, db, &models.Intervention{ClientID: client.ID, Type: "Riparazione", Date: "2024-01-20", Duration: 1, Cost: 50})
	mustCreate(t, db, &models.Intervention{ClientID: client.ID, Type: "Manutenzione", Date: "2024-03-01", Duration: 1, Cost: 80})
	return client
}

func TestPreviewInvoice(t *testing.T) {
	db := setupTestDB(t)
	router := invoiceRouter()
	client := seedInvoiceData(t, db)

	w := performRequest(router, "POST", "/invoices/preview", gin.H{
		"client_id":  client.ID,
		"date_start": "2024-01-01",
		"date_end":   "2024-01-31",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataObject(t, w)
	assert.Equal(t, "Rossi", data["client_name"])
	assert.Equal(t, 150.0, data["total"])
	assert.Len(t, data["lines"].([]interface{}), 2)
}

func TestPreviewInvoiceValidation(t *testing.T) {
	db := setupTestDB(t)
	router := invoiceRouter()
	client := seedInvoiceData(t, db)

	w := performRequest(router, "POST", "/invoices/preview", gin.H{
		"date_start": "2024-01-01",
		"date_end":   "2024-01-31",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Il cliente è obbligatorio", errorMessage(t, w))

	w = performRequest(router, "POST", "/invoices/preview", gin.H{
		"client_id":  client.ID,
		"date_start": "gennaio",
		"date_end":   "2024-01-31",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Il periodo di fatturazione non è valido", errorMessage(t, w))
}

func TestPreviewInvoiceNoInterventions(t *testing.T) {
	db := setupTestDB(t)
	router := invoiceRouter()
	client := seedInvoiceData(t, db)

	w := performRequest(router, "POST", "/invoices/preview", gin.H{
		"client_id":  client.ID,
		"date_start": "2025-01-01",
		"date_end":   "2025-12-31",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_INTERVENTIONS", errorCode(t, w))
	assert.Equal(t, "Nessun intervento trovato per il periodo selezionato", errorMessage(t, w))
}

func TestGenerateInvoicePDF(t *testing.T) {
	db := setupTestDB(t)
	router := invoiceRouter()
	client := seedInvoiceData(t, db)
	services.SetArchiveService(nil)

	w := performRequest(router, "POST", "/invoices", gin.H{
		"client_id":  client.ID,
		"date_start": "2024-01-01",
		"date_end":   "2024-01-31",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "fattura_Rossi_2024-01-01_2024-01-31.pdf")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
	// No archive configured, no archive key
	assert.Empty(t, w.Header().Get("X-Invoice-Archive-Key"))
}

func TestGenerateInvoiceArchivesCopy(t *testing.T) {
	db := setupTestDB(t)
	router := invoiceRouter()
	client := seedInvoiceData(t, db)

	mock := services.NewMockArchiveService()
	mock.SetAsMockForTesting()
	defer services.SetArchiveService(nil)

	w := performRequest(router, "POST", "/invoices", gin.H{
		"client_id":  client.ID,
		"date_start": "2024-01-01",
		"date_end":   "2024-01-31",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	key := w.Header().Get("X-Invoice-Archive-Key")
	assert.NotEmpty(t, key)
	assert.True(t, mock.InvoiceExists(key))
	assert.Equal(t, w.Body.Bytes(), mock.StoredInvoice(key))
}

func TestGetArchivedInvoiceURL(t *testing.T) {
	setupTestDB(t)
	router := invoiceRouter()

	mock := services.NewMockArchiveService()
	mock.SetAsMockForTesting()
	defer services.SetArchiveService(nil)

	key, err := mock.StoreInvoice("fattura_Rossi_2024-01-01_2024-01-31.pdf", []byte("%PDF"))
	assert.NoError(t, err)

	w := performRequest(router, "GET", "/invoices/archive/url?key="+key, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, dataObject(t, w)["url"], key)

	w = performRequest(router, "GET", "/invoices/archive/url?key=fatture/missing.pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, "GET", "/invoices/archive/url", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArchivedInvoiceURLArchiveDisabled(t *testing.T) {
	setupTestDB(t)
	router := invoiceRouter()
	services.SetArchiveService(nil)

	w := performRequest(router, "GET", "/invoices/archive/url?key=fatture/x.pdf", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "ARCHIVE_DISABLED", errorCode(t, w))
}
