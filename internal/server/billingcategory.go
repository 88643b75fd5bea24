package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	billingcategorydomain "github.com/saiteki-ops/saiteki/internal/billingcategory/domain"
)

func (s *Server) CreateBillingCategory(c *gin.Context) {
	var req billingcategorydomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.billingCategorySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListBillingCategories(c *gin.Context) {
	resp, err := s.billingCategorySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBillingCategoryByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.billingCategorySvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateBillingCategory(c *gin.Context) {
	var req billingcategorydomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.billingCategorySvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteBillingCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.billingCategorySvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
