package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nirman/internal/domain/auth"
	mock_interfaces "nirman/internal/usecase/interfaces/mocks"
	"nirman/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	session := auth.Session{UserID: "u-1", Username: "asha", Role: auth.RoleProgressMonitor, ExpiresAt: fixedNow.Add(time.Hour)}

	cases := []struct {
		name     string
		header   string
		setup    func(m *mock_interfaces.MockITokenIssuer)
		wantCode int
		wantErr  string
	}{
		{name: "missing header", header: "", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHENTICATED"},
		{name: "wrong scheme", header: "Basic abc", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHENTICATED"},
		{
			name:   "parse failure",
			header: "Bearer bad",
			setup: func(m *mock_interfaces.MockITokenIssuer) {
				m.EXPECT().Parse("bad").Return(auth.Session{}, errors.New("signature is invalid"))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:   "expired session",
			header: "Bearer old",
			setup: func(m *mock_interfaces.MockITokenIssuer) {
				expired := session
				expired.ExpiresAt = fixedNow
				m.EXPECT().Parse("old").Return(expired, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:   "valid",
			header: "bearer good",
			setup: func(m *mock_interfaces.MockITokenIssuer) {
				m.EXPECT().Parse("good").Return(session, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
			if tc.setup != nil {
				tc.setup(tokens)
			}

			r := gin.New()
			r.GET("/me", Authenticate(tokens, clock), func(c *gin.Context) {
				s, ok := auth.SessionFrom(c.Request.Context())
				require.True(t, ok)
				assert.Equal(t, "u-1", s.UserID)
				assert.Equal(t, "u-1", c.Request.Context().Value(logger.UserIDKey))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tc.wantCode, w.Code)
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, errorCode(t, w))
			}
		})
	}
}

func TestRequireCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(role auth.Role, withSession bool) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/installment",
			func(c *gin.Context) {
				if withSession {
					c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), auth.Session{UserID: "u-1", Role: role}))
				}
				c.Next()
			},
			RequireCapability(auth.DefaultPolicy(), auth.CapReleaseInstallment),
			func(c *gin.Context) { c.Status(http.StatusNoContent) },
		)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/installment", nil))
		return w
	}

	assert.Equal(t, http.StatusNoContent, run(auth.RoleProgressMonitor, true).Code)
	assert.Equal(t, http.StatusNoContent, run(auth.RoleAdmin, true).Code)

	w := run(auth.RoleDataEntryOperator, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))

	assert.Equal(t, http.StatusUnauthorized, run(auth.RoleAdmin, false).Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "%v", c.Request.Context().Value(logger.RequestIDKey))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-42", w.Body.String())
	})

	t.Run("mints one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(HeaderRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w))
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("Bearer   abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
}
