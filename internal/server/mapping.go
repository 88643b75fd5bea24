package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	productcsvdomain "github.com/saiteki-ops/saiteki/internal/productcsv/domain"
	wmscsvdomain "github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
)

func (s *Server) CreateProductCSVMapping(c *gin.Context) {
	var req productcsvdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productMappingSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ListProductCSVMappings returns every cart mapping, or only the one for
// ?cart_id= when the filter is present.
func (s *Server) ListProductCSVMappings(c *gin.Context) {
	if cartID := strings.TrimSpace(c.Query("cart_id")); cartID != "" {
		resp, err := s.productMappingSvc.GetByCart(c.Request.Context(), cartID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})
		return
	}

	resp, err := s.productMappingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProductCSVMappingByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.productMappingSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateProductCSVMapping(c *gin.Context) {
	var req productcsvdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.productMappingSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteProductCSVMapping(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.productMappingSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) CreateWMSCSVMapping(c *gin.Context) {
	var req wmscsvdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.wmsMappingSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListWMSCSVMappings(c *gin.Context) {
	if wmsID := strings.TrimSpace(c.Query("wms_id")); wmsID != "" {
		resp, err := s.wmsMappingSvc.GetByWMS(c.Request.Context(), wmsID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})
		return
	}

	resp, err := s.wmsMappingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetWMSCSVMappingByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.wmsMappingSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateWMSCSVMapping(c *gin.Context) {
	var req wmscsvdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.wmsMappingSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteWMSCSVMapping(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.wmsMappingSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
