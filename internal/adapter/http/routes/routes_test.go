package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nirman/internal/adapter/http/handlers"
	"nirman/internal/adapter/http/handlers/mocks"
	"nirman/internal/domain/auth"
	"nirman/internal/domain/entities"
	"nirman/internal/usecase"
	mock_interfaces "nirman/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router   *gin.Engine
	tokens   *mock_interfaces.MockITokenIssuer
	progress *mocks.MockIWorkProgressUseCase
}

func newFixture(t *testing.T) routerFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
	progress := mocks.NewMockIWorkProgressUseCase(ctrl)

	router := NewRouter(Dependencies{
		Tokens:          tokens,
		Policy:          auth.DefaultPolicy(),
		AuthHandler:     handlers.NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl)),
		ProposalHandler: handlers.NewWorkProposalHandler(mocks.NewMockIWorkProposalUseCase(ctrl)),
		ProgressHandler: handlers.NewWorkProgressHandler(progress),
	})
	return routerFixture{router: router, tokens: tokens, progress: progress}
}

func (f routerFixture) as(role auth.Role) {
	f.tokens.EXPECT().Parse("tok").Return(auth.Session{
		UserID:    "u-1",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
}

func (f routerFixture) do(method, path string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorized {
		req.Header.Set("Authorization", "Bearer tok")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/api/ping", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/work-progress", false).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/work-proposals/wp-1/progress", false).Code)
}

func TestRouter_CapabilityChecks(t *testing.T) {
	cases := []struct {
		name   string
		role   auth.Role
		method string
		path   string
	}{
		{"viewer cannot record progress", auth.RoleViewer, http.MethodPost, "/api/work-proposals/wp-1/progress"},
		{"data entry cannot release installments", auth.RoleDataEntryOperator, http.MethodPost, "/api/work-proposals/wp-1/progress/installment"},
		{"tender manager cannot complete", auth.RoleTenderManager, http.MethodPost, "/api/work-proposals/wp-1/progress/complete"},
		{"progress monitor cannot cancel", auth.RoleProgressMonitor, http.MethodPost, "/api/work-proposals/wp-1/cancel"},
		{"viewer cannot create", auth.RoleViewer, http.MethodPost, "/api/work-proposals"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.as(tc.role)
			assert.Equal(t, http.StatusForbidden, f.do(tc.method, tc.path, true).Code)
		})
	}
}

func TestRouter_ViewerReachesDashboard(t *testing.T) {
	f := newFixture(t)
	f.as(auth.RoleViewer)
	f.progress.EXPECT().ListDashboard(gomock.Any(), gomock.Any()).Return(usecase.DashboardPage{
		Data:       []entities.WorkProposal{},
		Pagination: usecase.Pagination{Current: 1, Limit: 10},
	}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/work-progress", true).Code)
}
