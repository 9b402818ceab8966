package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/gpx-pace-backend/internal/models"
	"github.com/jengzang/gpx-pace-backend/internal/service"
	"github.com/jengzang/gpx-pace-backend/pkg/response"
)

// PaceHandler handles HTTP requests for pace computations
type PaceHandler struct {
	paceService *service.PaceService
}

// NewPaceHandler creates a new pace handler
func NewPaceHandler(paceService *service.PaceService) *PaceHandler {
	return &PaceHandler{
		paceService: paceService,
	}
}

// PaceForm is the multipart form posted by the upload page
type PaceForm struct {
	Method      string `form:"method" binding:"required,oneof=distance time"`
	StartKm     string `form:"start_km"`
	EndKm       string `form:"end_km"`
	StartOffset string `form:"start_offset"`
	EndOffset   string `form:"end_offset"`
}

// Request converts the form into the method-specific raw bounds
func (f PaceForm) Request() models.PaceRequest {
	req := models.PaceRequest{Method: f.Method}
	switch f.Method {
	case models.MethodDistance:
		req.Start, req.End = f.StartKm, f.EndKm
	case models.MethodTime:
		req.Start, req.End = f.StartOffset, f.EndOffset
	}
	return req
}

// ComputePace handles POST /api/v1/pace
func (h *PaceHandler) ComputePace(c *gin.Context) {
	fileHeader, err := c.FormFile("gpx_file")
	if err != nil && bodyTooLarge(err) {
		response.Failure(c, http.StatusRequestEntityTooLarge, string(models.KindInvalidUpload), "Uploaded file is too large")
		return
	}
	if err != nil {
		response.Failure(c, http.StatusBadRequest, string(models.KindInvalidUpload), "Please upload a valid GPX file.")
		return
	}

	var form PaceForm
	if err := c.ShouldBind(&form); err != nil {
		response.Failure(c, http.StatusBadRequest, string(models.KindInvalidInput), "method must be distance or time")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Failure(c, http.StatusBadRequest, string(models.KindInvalidUpload), "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result := h.paceService.ComputeUpload(c.Request.Context(), fileHeader.Filename, file, form.Request())
	if !result.OK() {
		c.Error(&models.Error{Kind: result.Failure.Kind, Message: result.Failure.Message})
		response.Failure(c, StatusFor(result.Failure.Kind), string(result.Failure.Kind), result.Failure.Message)
		return
	}

	response.Success(c, result.Summary)
}

// GetHistory handles GET /api/v1/pace/history
func (h *PaceHandler) GetHistory(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	queries, err := h.paceService.History(c.Request.Context(), limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"items": queries,
		"count": len(queries),
	})
}

// bodyTooLarge reports whether err came from the request body limit.
// mime/multipart does not always wrap the reader error, hence the text match.
func bodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// StatusFor maps an error kind to an HTTP status code
func StatusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindInvalidUpload, models.KindInvalidInput, models.KindInvalidRange:
		return http.StatusBadRequest
	case models.KindParse, models.KindEmptyTrack, models.KindMissingTimestamp:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
