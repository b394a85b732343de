package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/pkg/apperrors"
)

// HandleAPIError maps a service error onto the JSON error envelope
func HandleAPIError(c *gin.Context, err error) {
	status, code := classify(err)

	errorDetail := dto.NewErrorDetail(code, apperrors.Message(err))
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		errorDetail = dto.NewErrorDetail(code, "Internal server error").WithSeverity(dto.ErrorSeverityCritical)
	} else if status < http.StatusInternalServerError && code != dto.ErrorCodeForbidden {
		errorDetail = errorDetail.WithSeverity(dto.ErrorSeverityWarning)
	}
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		errorDetail = errorDetail.WithDetails(ce.Details)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(errorDetail))
}

func classify(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound
	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.ErrorCodeExpiredToken
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidToken
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer
	}
}
