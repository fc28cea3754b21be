package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	token, err := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 123, claims.StaffID)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		setup       func() string
		expectError error
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Garbage Token",
			setup:       func() string { return "invalid.token.string" },
			expectError: ErrInvalidToken,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(-time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Signed With Another Secret",
			setup: func() string {
				token, _ := NewJWTService("other").GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Missing Staff Id",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "Foreign Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					StaffID:        5,
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "other-service"},
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: ErrInvalidClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, err := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	var gotID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value(StaffIDKey).(int)
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(jwtService)(next)

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{name: "No header", header: "", expected: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", expected: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", expected: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = 0
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
			if tt.expected == http.StatusOK {
				assert.Equal(t, 42, gotID)
			}
		})
	}
}
