package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/service"
	"github.com/dfcastellanos/clientes-api/internal/utils"
	"github.com/dfcastellanos/clientes-api/models"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

func contextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, utils.UserIDCtxKey, userID)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	validToken := models.Token{UserID: 42}

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
		wantUserID     int64
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:           "invalid header format (no space) → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "valid token → next called, userID in context",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUserID:     42,
		},
		{
			name:       "rejected token → 401",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.parseTokenFn != nil {
				authSvc = &mockAuthService{parseTokenFn: tt.parseTokenFn}
			} else {
				// ParseToken must not run when the header never parses
				authSvc = &mockAuthService{parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}}
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			var capturedUserID any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUserID = r.Context().Value(utils.UserIDCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled && tt.wantUserID != 0 {
				assert.Equal(t, tt.wantUserID, capturedUserID)
			}
		})
	}
}

// ---- 401 responses carry the bearer challenge ----

func TestAuth_ChallengeHeaderOnEveryRejection(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, header := range []string{"", "garbage", "Bearer bad-token"} {
		rr := executeAuth(h, header, next)
		require.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", header)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"), "header %q", header)
	}
}

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("rejected token error body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer expired", next)
		assert.Contains(t, rr.Body.String(), service.ErrTokenIsExpiredOrInvalid.Error())
	})
}
