package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saiteki-ops/saiteki/internal/salesreport"
)

func (s *Server) GetSalesReport(c *gin.Context) {
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

	req := salesreport.Request{Year: year, Month: month}
	if warehouseID := strings.TrimSpace(query.WarehouseID); warehouseID != "" {
		req.WarehouseID = &warehouseID
	}

	report, err := s.reportSvc.Aggregate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}
