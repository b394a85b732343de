package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWT(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: exp, TokenIssuer: "ams-test"})
}

func protectedRouter(jwt *auth.JWTService, roles ...models.RoleType) *gin.Engine {
	m := NewAuthMiddleware(jwt)
	r := gin.New()
	r.GET("/protected", m.JWTAuth(), m.RoleRequired(roles...), func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.JSON(http.StatusOK, p)
	})
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestJWTAuth_RoleRequired(t *testing.T) {
	jwt := newJWT(time.Hour)
	router := protectedRouter(jwt, models.RoleHOD)

	hodToken, _, err := jwt.GenerateAccessToken(auth.Principal{UserID: 5, Email: "hod@gec.edu", RoleType: models.RoleHOD, CollegeID: 1})
	require.NoError(t, err)
	studentToken, _, err := jwt.GenerateAccessToken(auth.Principal{UserID: 42, Email: "ravi@gec.edu", RoleType: models.RoleStudent, CollegeID: 1})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		code   dto.ErrorCode
	}{
		{"missing token", "", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"garbage", "Bearer nonsense", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"wrong role", "Bearer " + studentToken, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"right role", "Bearer " + hodToken, http.StatusOK, ""},
		{"raw token", hodToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, w).Error.Code)
				return
			}
			var p auth.Principal
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
			assert.Equal(t, auth.Principal{UserID: 5, Email: "hod@gec.edu", RoleType: models.RoleHOD, CollegeID: 1}, p)
		})
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := newJWT(-time.Minute)
	token, _, err := expired.GenerateAccessToken(auth.Principal{UserID: 5, Email: "hod@gec.edu", RoleType: models.RoleHOD, CollegeID: 1})
	require.NoError(t, err)

	router := protectedRouter(newJWT(time.Hour), models.RoleHOD)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, decodeError(t, w).Error.Code)
}

func TestJWTAuth_QueryTokenFallback(t *testing.T) {
	jwt := newJWT(time.Hour)
	token, _, err := jwt.GenerateAccessToken(auth.Principal{UserID: 1, Email: "office@gec.edu", RoleType: models.RoleCollege, CollegeID: 1})
	require.NoError(t, err)

	router := protectedRouter(jwt, models.RoleCollege, models.RoleHOD)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{apperrors.NotFoundf(apperrors.ErrEnrollmentNotFound, "student enrollment not found for student id: %d", 7),
			http.StatusNotFound, dto.ErrorCodeResourceNotFound, "student enrollment not found for student id: 7"},
		{apperrors.ErrSemesterNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "semester not found"},
		{apperrors.ErrCollegeNameExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "college name already registered"},
		{apperrors.NewBadRequestError("semester must be between 1 and 10"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "semester must be between 1 and 10"},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "invalid credentials"},
		{apperrors.NewForbiddenError("college scope mismatch"), http.StatusForbidden, dto.ErrorCodeForbidden, "college scope mismatch"},
		{fmt.Errorf("query failed: %w", fmt.Errorf("connection reset")), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			switch {
			case tt.status >= http.StatusInternalServerError:
				assert.Equal(t, dto.ErrorSeverityCritical, resp.Error.Severity)
			case tt.status == http.StatusForbidden:
				assert.Equal(t, dto.ErrorSeverityError, resp.Error.Severity)
			default:
				assert.Equal(t, dto.ErrorSeverityWarning, resp.Error.Severity)
			}
		})
	}
}

func TestBindJSON_ValidationFailure(t *testing.T) {
	type body struct {
		Email string `json:"email" binding:"required,email"`
	}
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if !BindJSON(c, &b) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusTeapot, "") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "/ping", line["path"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
}
