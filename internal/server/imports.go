package server

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps CSV uploads. Cart and WMS exports are a few MB at most.
const maxUploadBytes = 32 << 20

func (s *Server) ImportProducts(c *gin.Context) {
	ecSiteID := strings.TrimSpace(c.PostForm("ec_site_id"))
	if ecSiteID == "" {
		AbortWithError(c, newValidationError("ec_site_id", "invalid_ec_site_id", "ec_site_id is required"))
		return
	}

	raw, err := readUpload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	summary, err := s.importSvc.RunProduct(c.Request.Context(), ecSiteID, raw)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func (s *Server) ImportShipments(c *gin.Context) {
	warehouseID := strings.TrimSpace(c.PostForm("warehouse_id"))
	if warehouseID == "" {
		AbortWithError(c, newValidationError("warehouse_id", "invalid_warehouse_id", "warehouse_id is required"))
		return
	}

	raw, err := readUpload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	summary, err := s.importSvc.RunShipment(c.Request.Context(), warehouseID, raw)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func (s *Server) PreviewImport(c *gin.Context) {
	raw, err := readUpload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	limit := 0
	if v := strings.TrimSpace(c.PostForm("limit")); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			AbortWithError(c, newValidationError("limit", "invalid_limit", "invalid limit"))
			return
		}
	}

	preview, err := s.importSvc.PreviewDocument(raw, limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": preview})
}

func readUpload(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, newValidationError("file", "invalid_file", "file is required")
	}
	if header.Size > maxUploadBytes {
		return nil, newValidationError("file", "file_too_large", "file exceeds upload limit")
	}

	f, err := header.Open()
	if err != nil {
		return nil, newValidationError("file", "invalid_file", "file could not be read")
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return nil, newValidationError("file", "invalid_file", "file could not be read")
	}
	if int64(len(raw)) > maxUploadBytes {
		return nil, newValidationError("file", "file_too_large", "file exceeds upload limit")
	}
	return raw, nil
}
