package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	service "github.com/mrojasc/despensa/internal/service/inventory"
)

// InventoryHandler handles the capture, ingestion and listing HTTP routes.
type InventoryHandler struct {
	svc    service.Service
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(svc service.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, logger: logger}
}

// Capture serves the barcode scanning page.
func (h *InventoryHandler) Capture(c *gin.Context) {
	c.HTML(http.StatusOK, "capture.tmpl", nil)
}

// Add ingests one scanned submission and renders a confirmation.
func (h *InventoryHandler) Add(c *gin.Context) {
	input := service.IngestInput{
		Code:       c.PostForm("codigo"),
		Quantity:   c.DefaultPostForm("cantidad", "1"),
		Expiration: c.DefaultPostForm("fecha_venc", "N/A"),
	}

	record, err := h.svc.Ingest(c.Request.Context(), input)
	if errors.Is(err, service.ErrMissingCode) {
		h.logger.Warn("submission without product code")
		c.String(http.StatusBadRequest, "falta el código del producto")
		return
	}
	if err != nil {
		h.logger.Error("failed ingesting record", zap.String("code", input.Code), zap.Error(err))
		c.String(http.StatusInternalServerError, "no se pudo guardar el producto")
		return
	}

	c.HTML(http.StatusOK, "confirm.tmpl", record)
}

// List renders the sorted inventory table.
func (h *InventoryHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing inventory", zap.Error(err))
		c.String(http.StatusInternalServerError, "no se pudo leer el inventario")
		return
	}

	c.HTML(http.StatusOK, "inventory.tmpl", gin.H{"Records": records})
}
