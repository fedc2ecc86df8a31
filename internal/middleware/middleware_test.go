package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deck/internal/config"
	"deck/internal/domain/model"
	"deck/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// =====================
// レスポンス確認用
// =====================

type mwErrorResponse struct {
	Error string `json:"error"`
}

type mwOKResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// =====================
// helper
// =====================

func mustMakeJWT(t *testing.T, secret string, claims jwt.MapClaims, signingMethod jwt.SigningMethod) string {
	t.Helper()

	token := jwt.NewWithClaims(signingMethod, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func salesClaims(sub interface{}) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  sub,
		"role": "SALES",
		"iat":  1,
		"exp":  9999999999,
	}
}

func runRequest(t *testing.T, e *echo.Echo, path string, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMWError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorResponse {
	t.Helper()
	var r mwErrorResponse
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}

func okHandler(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserIDKey).(string)
	role, _ := c.Get(middleware.CtxUserRoleKey).(string)
	return c.JSON(http.StatusOK, mwOKResponse{UserID: userID, Role: role})
}

// =====================
// AuthJWT
// =====================

func TestMiddleware_AuthJWT_Unauthorized(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	cases := map[string]string{
		"no header":     "",
		"bad scheme":    "Token abc.def.ghi",
		"empty token":   "Bearer ",
		"bad signature": "Bearer " + mustMakeJWT(t, "wrong-secret", salesClaims("U1"), jwt.SigningMethodHS256),
		"wrong alg":     "Bearer " + mustMakeJWT(t, cfg.JWTSecret, salesClaims("U1"), jwt.SigningMethodHS512),
		"numeric sub":   "Bearer " + mustMakeJWT(t, cfg.JWTSecret, salesClaims(123), jwt.SigningMethodHS256),
		"expired":       "Bearer " + mustMakeJWT(t, cfg.JWTSecret, jwt.MapClaims{"sub": "U1", "role": "SALES", "exp": 1}, jwt.SigningMethodHS256),
		"no role":       "Bearer " + mustMakeJWT(t, cfg.JWTSecret, jwt.MapClaims{"sub": "U1", "exp": 9999999999}, jwt.SigningMethodHS256),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			e.GET("/protected", okHandler, middleware.AuthJWT(cfg))

			rec := runRequest(t, e, "/protected", header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
		})
	}
}

// 正常：ctxに値が入る
func TestMiddleware_AuthJWT_Success_SetsContext(t *testing.T) {
	e := echo.New()
	cfg := config.Config{JWTSecret: "test-secret"}

	raw := mustMakeJWT(t, cfg.JWTSecret, salesClaims("8f0c6c1e-1111-4c1b-9c55-2b3a4d5e6f70"), jwt.SigningMethodHS256)
	e.GET("/protected", okHandler, middleware.AuthJWT(cfg))

	rec := runRequest(t, e, "/protected", "Bearer "+raw)
	require.Equal(t, http.StatusOK, rec.Code)

	var body mwOKResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "8f0c6c1e-1111-4c1b-9c55-2b3a4d5e6f70", body.UserID)
	assert.Equal(t, "SALES", body.Role)
}

// =====================
// RoleGuard
// =====================

func TestMiddleware_RoleGuard(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	e := echo.New()
	e.GET("/sales", okHandler, middleware.AuthJWT(cfg), middleware.RoleGuard(model.RoleSales, model.RoleAdmin))

	sales := mustMakeJWT(t, cfg.JWTSecret, salesClaims("U1"), jwt.SigningMethodHS256)
	rec := runRequest(t, e, "/sales", "Bearer "+sales)
	assert.Equal(t, http.StatusOK, rec.Code)

	creator := mustMakeJWT(t, cfg.JWTSecret, jwt.MapClaims{"sub": "U2", "role": "CREATOR", "exp": 9999999999}, jwt.SigningMethodHS256)
	rec = runRequest(t, e, "/sales", "Bearer "+creator)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", decodeMWError(t, rec).Error)
}

// AuthJWT無しでGuardだけ => 401
func TestMiddleware_RoleGuard_MissingContext(t *testing.T) {
	e := echo.New()
	e.GET("/sales", okHandler, middleware.RoleGuard(model.RoleSales))

	rec := runRequest(t, e, "/sales", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// =====================
// RequestLogger
// =====================

func TestMiddleware_RequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	e := echo.New()
	e.Use(middleware.RequestLogger(zap.New(core)))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := runRequest(t, e, "/ok", "")
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok", fields["uri"])
	assert.Equal(t, int64(200), fields["status"])
}
