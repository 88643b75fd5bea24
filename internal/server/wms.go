package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	wmsdomain "github.com/saiteki-ops/saiteki/internal/wms/domain"
)

func (s *Server) CreateWMS(c *gin.Context) {
	var req wmsdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.wmsSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListWMS(c *gin.Context) {
	resp, err := s.wmsSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetWMSByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.wmsSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateWMS(c *gin.Context) {
	var req wmsdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.wmsSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteWMS(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.wmsSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
