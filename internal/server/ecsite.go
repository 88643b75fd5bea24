package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ecsitedomain "github.com/saiteki-ops/saiteki/internal/ecsite/domain"
)

func (s *Server) CreateECSite(c *gin.Context) {
	var req ecsitedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ecSiteSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListECSites(c *gin.Context) {
	resp, err := s.ecSiteSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetECSiteByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.ecSiteSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateECSite(c *gin.Context) {
	var req ecsitedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.ecSiteSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteECSite(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.ecSiteSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
