package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/events"
)

// Notify publishes a change for every successful mutating request made by a signed-in member.
// The resource is the first path segment below prefix.
func Notify(pub events.Publisher, prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			action, mutating := actionFor(r.Method)
			if !mutating {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if ww.Status() >= http.StatusBadRequest {
				return
			}

			id, ok := auth.FromContext(r.Context())
			if !ok {
				return
			}

			c := events.Change{
				Resource: resourceOf(r.URL.Path, prefix),
				Action:   action,
				Member:   id.Member,
				At:       time.Now().UTC(),
			}

			// Best effort, the response is already written.
			if err := pub.Publish(r.Context(), c); err != nil {
				slog.Error("failed to publish change", "resource", c.Resource, "error", err)
			}
		})
	}
}

func actionFor(method string) (events.Action, bool) {
	switch method {
	case http.MethodPost:
		return events.Created, true
	case http.MethodPut, http.MethodPatch:
		return events.Updated, true
	case http.MethodDelete:
		return events.Deleted, true
	default:
		return "", false
	}
}

func resourceOf(path, prefix string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	resource, _, _ := strings.Cut(rest, "/")

	return resource
}
