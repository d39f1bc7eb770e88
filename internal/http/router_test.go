package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/events"
	buxferhttp "github.com/MrJamesThe3rd/buxfer/internal/http"
	httpanalytics "github.com/MrJamesThe3rd/buxfer/internal/http/analytics"
	httpauth "github.com/MrJamesThe3rd/buxfer/internal/http/auth"
	httpcategory "github.com/MrJamesThe3rd/buxfer/internal/http/category"
	httpdebt "github.com/MrJamesThe3rd/buxfer/internal/http/debt"
	httpdevice "github.com/MrJamesThe3rd/buxfer/internal/http/device"
	httpexpense "github.com/MrJamesThe3rd/buxfer/internal/http/expense"
	httpexport "github.com/MrJamesThe3rd/buxfer/internal/http/export"
	httpgoal "github.com/MrJamesThe3rd/buxfer/internal/http/goal"
	httpincome "github.com/MrJamesThe3rd/buxfer/internal/http/income"
	httprecurring "github.com/MrJamesThe3rd/buxfer/internal/http/recurring"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
	httptodo "github.com/MrJamesThe3rd/buxfer/internal/http/todo"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

// fakeAuth accepts the bearer token "ray-token" only.
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.BearerToken(r) != "ray-token" {
			respond.Error(w, r, errs.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), auth.Identity{Member: "ray"})))
	})
}

type fixture struct {
	router    http.Handler
	todos     *todo.MockRepository
	published *events.Recorder
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		todos:     todo.NewMockRepository(ctrl),
		published: &events.Recorder{},
	}

	f.router = buxferhttp.New(buxferhttp.Handlers{
		Auth:       httpauth.NewHandler(nil),
		Expenses:   httpexpense.NewHandler(nil),
		Recurring:  httprecurring.NewHandler(nil),
		Goals:      httpgoal.NewHandler(nil),
		Todos:      httptodo.NewHandler(todo.NewService(f.todos)),
		Debts:      httpdebt.NewHandler(nil),
		Income:     httpincome.NewHandler(nil),
		Categories: httpcategory.NewHandler(nil),
		Analytics:  httpanalytics.NewHandler(nil),
		Export:     httpexport.NewHandler(nil),
		Device:     httpdevice.NewHandler(nil, nil),
	}, buxferhttp.Options{
		CORSOrigins:  []string{"http://localhost:5173"},
		Authenticate: fakeAuth,
		Publisher:    f.published,
		Metrics:      buxferhttp.NewMetrics(prometheus.NewRegistry()),
	})

	return f
}

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	f := newFixture(t)

	rec := do(t, f.router, http.MethodGet, "/api/v1/todos", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, f.router, http.MethodGet, "/api/v1/todos", "stolen", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Empty(t, f.published.Changes())
}

func TestRouter_PublishesChanges(t *testing.T) {
	f := newFixture(t)

	f.todos.EXPECT().ListTodos(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.todos.EXPECT().
		CreateTodo(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, td *todo.Todo) error {
			td.ID = uuid.New()
			return nil
		})

	rec := do(t, f.router, http.MethodGet, "/api/v1/todos", "ray-token", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, f.published.Changes(), "reads are not announced")

	rec = do(t, f.router, http.MethodPost, "/api/v1/todos", "ray-token", `{"text":"Renew car insurance"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, f.router, http.MethodPost, "/api/v1/todos", "ray-token", `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	changes := f.published.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, "todos", changes[0].Resource)
	assert.Equal(t, events.Created, changes[0].Action)
	assert.Equal(t, "ray", string(changes[0].Member))
}

func TestRouter_RejectsNonJSONBodies(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", strings.NewReader("text=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer ray-token")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.todos.EXPECT().GetTodo(gomock.Any(), id).Return(nil, errs.ErrNotFound)

	do(t, f.router, http.MethodGet, "/api/v1/todos", "", "")
	do(t, f.router, http.MethodPost, "/api/v1/todos/"+id.String()+"/toggle", "ray-token", "")

	rec := do(t, f.router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	// Requests rejected before reaching a handler are labelled with the mount point.
	assert.Contains(t, body, `buxfer_http_requests_total{code="401",method="GET",route="/api/v1/todos"} 1`)
	// Matched requests are labelled with the route pattern, not the concrete path.
	assert.Contains(t, body, `buxfer_http_requests_total{code="404",method="POST",route="/api/v1/todos/{id}/toggle"} 1`)
	assert.NotContains(t, body, id.String())
}
