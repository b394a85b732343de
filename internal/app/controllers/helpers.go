// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
)

// MaxUploadSize caps spreadsheet uploads
const MaxUploadSize = 10 << 20

// multipartOverhead allows for boundaries and part headers around the file
const multipartOverhead = 1 << 10

// parseIDParam reads a positive int64 path parameter, writing a 400 on failure
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").
			WithField(name).
			WithDetails(label + " ID must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// readUpload loads the multipart "file" field into memory
func readUpload(ctx *gin.Context) (services.Upload, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxUploadSize+multipartOverhead)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uploadTooLarge(ctx)
			return services.Upload{}, false
		}
		badRequest(ctx, "File is required", "multipart field 'file' is missing")
		return services.Upload{}, false
	}
	if fileHeader.Size > MaxUploadSize {
		uploadTooLarge(ctx)
		return services.Upload{}, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		badRequest(ctx, "Unreadable file", err.Error())
		return services.Upload{}, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		badRequest(ctx, "Unreadable file", err.Error())
		return services.Upload{}, false
	}

	return services.Upload{Filename: fileHeader.Filename, Content: content}, true
}

func uploadTooLarge(ctx *gin.Context) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File too large").
		WithField("file").
		WithDetails(fmt.Sprintf("file must be at most %d bytes", MaxUploadSize))
	ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(errorDetail))
}

func badRequest(ctx *gin.Context, message, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithDetails(details)
	ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
