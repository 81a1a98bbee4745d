package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
	"github.com/polotecnico/gestionale-api/utils"
	"gorm.io/gorm"
)

// GenerateInvoiceRequest represents the request body for invoice
// generation: a client and an inclusive date range
type GenerateInvoiceRequest struct {
	ClientID  uint   `json:"client_id"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

func bindInvoiceRequest(c *gin.Context) (*GenerateInvoiceRequest, bool) {
	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return nil, false
	}

	if req.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Il cliente è obbligatorio",
			},
		})
		return nil, false
	}
	if !utils.ValidISODate(req.DateStart) || !utils.ValidISODate(req.DateEnd) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Il periodo di fatturazione non è valido",
			},
		})
		return nil, false
	}
	return &req, true
}

func buildInvoiceFor(c *gin.Context, req *GenerateInvoiceRequest) (*services.Invoice, bool) {
	db := config.GetDB()

	var client models.Client
	if err := db.First(&client, req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Client not found",
				},
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load client",
			},
		})
		return nil, false
	}

	var interventions []models.Intervention
	if err := db.Where("client_id = ?", client.ID).Order("date").Find(&interventions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load interventions",
			},
		})
		return nil, false
	}

	invoice, err := services.BuildInvoice(&client, interventions, req.DateStart, req.DateEnd)
	if err != nil {
		if errors.Is(err, services.ErrNoInterventions) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NO_INTERVENTIONS",
					"message": err.Error(),
				},
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVOICE_ERROR",
				"message": "Failed to build invoice",
			},
		})
		return nil, false
	}
	return invoice, true
}

// PreviewInvoice handles POST /api/v1/invoices/preview - the structured
// document without PDF rendering
func PreviewInvoice(c *gin.Context) {
	req, ok := bindInvoiceRequest(c)
	if !ok {
		return
	}
	invoice, ok := buildInvoiceFor(c, req)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    invoice,
	})
}

// GenerateInvoice handles POST /api/v1/invoices - renders the PDF and
// returns it as a download named fattura_<client>_<start>_<end>.pdf.
// When the S3 archive is configured a copy is stored and its key is
// returned in the X-Invoice-Archive-Key header; archive failures do not
// block the download.
func GenerateInvoice(c *gin.Context) {
	req, ok := bindInvoiceRequest(c)
	if !ok {
		return
	}
	invoice, ok := buildInvoiceFor(c, req)
	if !ok {
		return
	}

	pdf, err := invoice.RenderPDF()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PDF_ERROR",
				"message": "Failed to render invoice PDF",
			},
		})
		return
	}

	if archive := services.GetArchiveService(); archive != nil {
		key, err := archive.StoreInvoice(invoice.Filename(), pdf)
		if err != nil {
			log.Printf("warning: failed to archive invoice %s: %v", invoice.Filename(), err)
		} else {
			c.Header("X-Invoice-Archive-Key", key)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", invoice.Filename()))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetArchivedInvoiceURL handles GET /api/v1/invoices/archive/url?key=... -
// a presigned link to a previously archived invoice
func GetArchivedInvoiceURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Missing key parameter",
			},
		})
		return
	}

	archive := services.GetArchiveService()
	if archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ARCHIVE_DISABLED",
				"message": "Invoice archive is not configured",
			},
		})
		return
	}

	url, err := archive.GetPresignedURL(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Archived invoice not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"url": url},
	})
}
