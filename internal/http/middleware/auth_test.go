package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/skillup-backend/internal/pkg/ctxutil"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/services"
)

const testSecret = "test-secret"

func signHS256(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func authRouter(t *testing.T, issuer string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	authSvc, err := services.NewAuthService(logger.Nop(), services.AuthConfig{JWTSecret: testSecret, Issuer: issuer})
	require.NoError(t, err)
	am := NewAuthMiddleware(logger.Nop(), authSvc)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/api/me", am.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": ctxutil.UserID(c.Request.Context())})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthAttachesSubject(t *testing.T) {
	r := authRouter(t, "")
	tok := signHS256(t, jwt.RegisteredClaims{
		Subject:   "user_2abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	rec := doGet(r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "user_2abc", body["userId"])
}

func TestRequireAuthRejects(t *testing.T) {
	r := authRouter(t, "https://issuer.example")
	valid := jwt.RegisteredClaims{
		Subject:   "user_2abc",
		Issuer:    "https://issuer.example",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := valid
	wrongIssuer.Issuer = "https://other.example"
	noSubject := valid
	noSubject.Subject = ""
	noExpiry := valid
	noExpiry.ExpiresAt = nil

	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc",
		"garbage":      "Bearer not-a-jwt",
		"expired":      "Bearer " + signHS256(t, expired),
		"wrong issuer": "Bearer " + signHS256(t, wrongIssuer),
		"no subject":   "Bearer " + signHS256(t, noSubject),
		"no expiry":    "Bearer " + signHS256(t, noExpiry),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doGet(r, header)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var env struct {
				Error struct {
					Message string `json:"message"`
					Code    string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.Equal(t, "unauthorized", env.Error.Code)
			require.NotEmpty(t, env.Error.Message)
		})
	}

	ok := doGet(r, "Bearer "+signHS256(t, valid))
	require.Equal(t, http.StatusOK, ok.Code)
}

func TestRequireAuthRejectsAlgorithmMismatch(t *testing.T) {
	r := authRouter(t, "")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user_2abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := doGet(r, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewAuthServiceRequiresKey(t *testing.T) {
	_, err := services.NewAuthService(logger.Nop(), services.AuthConfig{})
	require.Error(t, err)

	_, err = services.NewAuthService(logger.Nop(), services.AuthConfig{JWTPublicKey: "not pem"})
	require.Error(t, err)
}

func TestAttachTraceContextPropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	var seen *ctxutil.TraceData
	r.GET("/healthcheck", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.NotNil(t, seen)
	require.Equal(t, "req-123", seen.RequestID)
	require.NotEmpty(t, seen.TraceID)
	require.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	require.Equal(t, seen.TraceID, rec.Header().Get(HeaderTraceID))
}
