// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MichaelDipperstein/lzss"
	"github.com/MichaelDipperstein/lzss/internal/config"
)

// serviceVersion is reported by the info endpoint.
const serviceVersion = "1.0.0"

// Handlers bundles the HTTP handlers with their runtime configuration.
type Handlers struct {
	cfg *config.Config
}

// NewHandlers returns handlers backed by cfg.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleCompress compresses an uploaded file and returns the stream as a
// download. The multipart form carries the file plus optional "finder" and
// "framing" fields.
func (h *Handlers) HandleCompress(c *gin.Context) {
	opts := &lzss.CompressOptions{}

	if name := c.DefaultPostForm("finder", lzss.FinderHashChain.String()); name != "" {
		finder, err := lzss.ParseMatchFinder(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid finder",
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("Supported finders: %s", strings.Join(lzss.MatchFinderNames(), ", ")),
			})
			return
		}
		opts.Finder = finder
	}

	framing, ok := h.framingFromForm(c)
	if !ok {
		return
	}
	opts.Framing = framing

	content, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	compressed, err := lzss.Compress(content, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Compression failed",
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}

	c.Header("X-Original-Size", strconv.Itoa(len(content)))
	c.Header("X-Compressed-Size", strconv.Itoa(len(compressed)))
	sendDownload(c, compressed, baseFilename(filename)+".lzss")
}

// HandleDecompress decompresses an uploaded stream and returns the decoded
// bytes as a download.
func (h *Handlers) HandleDecompress(c *gin.Context) {
	framing, ok := h.framingFromForm(c)
	if !ok {
		return
	}

	content, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	decompressed, err := lzss.Decompress(content, &lzss.DecompressOptions{Framing: framing})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Decompression failed",
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}

	c.Header("X-Compressed-Size", strconv.Itoa(len(content)))
	c.Header("X-Original-Size", strconv.Itoa(len(decompressed)))
	sendDownload(c, decompressed, baseFilename(filename)+"_decoded")
}

// HandleInfo provides information about the service and its parameters.
func (h *Handlers) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "lzss-compression-service",
		"version": serviceVersion,
		"format": gin.H{
			"window_size":      lzss.WindowSize,
			"max_match_length": lzss.MaxCoded,
			"min_match_length": lzss.MaxUncoded + 1,
		},
		"finders":  lzss.MatchFinderNames(),
		"framings": lzss.FramingNames(),
		"limits": gin.H{
			"max_file_size": h.cfg.MaxFileSize,
		},
		"endpoints": gin.H{
			"compress":   "POST /api/v1/compress - multipart file with optional finder and framing fields",
			"decompress": "POST /api/v1/decompress - multipart file with optional framing field",
			"info":       "GET /info - service information",
			"health":     "GET /health - health check",
		},
	})
}

// HandleHealth provides a simple health check endpoint.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "lzss-compression-service",
	})
}

// framingFromForm parses the optional "framing" form field, answering the
// request itself on failure.
func (h *Handlers) framingFromForm(c *gin.Context) (lzss.Framing, bool) {
	name := c.DefaultPostForm("framing", lzss.FramingBitStream.String())
	framing, err := lzss.ParseFraming(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid framing",
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Supported framings: %s", strings.Join(lzss.FramingNames(), ", ")),
		})
		return 0, false
	}
	return framing, true
}

// readUpload fetches the "file" form part within the configured size limit,
// answering the request itself on failure.
func (h *Handlers) readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "File upload error",
			Code:    http.StatusBadRequest,
			Message: "No file provided or file upload failed",
		})
		return nil, "", false
	}
	defer file.Close()

	if header.Size > h.cfg.MaxFileSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "File too large",
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Maximum file size is %d bytes", h.cfg.MaxFileSize),
		})
		return nil, "", false
	}

	content, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxFileSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "File read error",
			Code:    http.StatusInternalServerError,
			Message: "Failed to read uploaded file",
		})
		return nil, "", false
	}

	return content, header.Filename, true
}

// sendDownload returns data as an attachment named filename.
func sendDownload(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// baseFilename strips the extension from an uploaded filename, defaulting
// to "file" when the client sent none.
func baseFilename(filename string) string {
	if filename == "" {
		return "file"
	}

	if i := strings.LastIndexByte(filename, '.'); i > 0 {
		return filename[:i]
	}
	return filename
}
