// Package swgorilla has a gorilla/mux middleware that times each route with a
// per-request Stopwatch.
//
// Summary
//
// The middleware names its timer after the matched route template, so every
// request to /hello/{name} lands under the same timer name whatever the
// name. It can be combined with swnethttp.WrapHandler around the router; the
// two then share one Stopwatch and the outer wrapper sends the events.
package swgorilla

import (
	"net/http"

	"github.com/gorilla/mux"
	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/stopwatch-go/wrappers/common"
)

// DefaultTimer is used when the route has no path template.
const DefaultTimer = "gorilla.request"

// Middleware returns a gorilla middleware that sends the request's timers
// through builder.
func Middleware(builder *libhoney.Builder) mux.MiddlewareFunc {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, req := common.StartRequest(r)
			name := DefaultTimer
			// pull out any variables in the URL, add the thing we're matching, etc.
			for k, v := range mux.Vars(r) {
				req.AddField("gorilla.vars."+k, v)
			}
			if route := mux.CurrentRoute(r); route != nil {
				if routeName := route.GetName(); routeName != "" {
					req.AddField("handler.name", routeName)
				}
				if path, err := route.GetPathTemplate(); err == nil {
					req.AddField("handler.route", path)
					name = path
				}
			}
			wrapped, status := common.WrapWriter(w)
			req.Time(name, func() { handler.ServeHTTP(wrapped, r) })
			req.AddField("response.status_code", status.Status())
			req.Finish(builder)
		})
	}
}
