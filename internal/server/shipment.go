package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	shipmentdomain "github.com/saiteki-ops/saiteki/internal/shipment/domain"
)

func (s *Server) ListShipments(c *gin.Context) {
	var query struct {
		Year        string `form:"year"`
		Month       string `form:"month"`
		WarehouseID string `form:"warehouse_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	year, err := strconv.Atoi(strings.TrimSpace(query.Year))
	if err != nil {
		AbortWithError(c, newValidationError("year", "invalid_year", "invalid year"))
		return
	}
	month, err := strconv.Atoi(strings.TrimSpace(query.Month))
	if err != nil {
		AbortWithError(c, newValidationError("month", "invalid_month", "invalid month"))
		return
	}

	req := shipmentdomain.ListRequest{Year: year, Month: month}
	if warehouseID := strings.TrimSpace(query.WarehouseID); warehouseID != "" {
		req.WarehouseID = &warehouseID
	}

	resp, err := s.shipmentSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetShipmentByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.shipmentSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteShipment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.shipmentSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
