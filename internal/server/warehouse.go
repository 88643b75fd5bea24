package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	warehousedomain "github.com/saiteki-ops/saiteki/internal/warehouse/domain"
)

func (s *Server) CreateWarehouse(c *gin.Context) {
	var req warehousedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.warehouseSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListWarehouses(c *gin.Context) {
	resp, err := s.warehouseSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetWarehouseByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.warehouseSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateWarehouse(c *gin.Context) {
	var req warehousedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.warehouseSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteWarehouse(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.warehouseSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
