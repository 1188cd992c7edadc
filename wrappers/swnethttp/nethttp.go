// Package swnethttp times net/http handlers with a per-request Stopwatch.
//
// Summary
//
// Every wrapped request gets its own Stopwatch on its context, retrievable
// with stopwatch.FromContext. The wrapper times the whole handler under
// RequestTimer; handlers add their own timers to the same Stopwatch. When the
// request is done, one Honeycomb event per timer is sent through the builder,
// carrying the common request fields and the response status.
package swnethttp

import (
	"net/http"
	"reflect"
	"runtime"

	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/stopwatch-go/wrappers/common"
)

// RequestTimer is the timer covering the whole handler.
const RequestTimer = "http.request"

// WrapHandler times every invocation of handler.
func WrapHandler(builder *libhoney.Builder, handler http.Handler) http.Handler {
	return wrap(builder, handler, nil)
}

// WrapHandlerFunc times every invocation of hf, and records its function name.
func WrapHandlerFunc(builder *libhoney.Builder, hf func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	fields := map[string]interface{}{
		"handler.name": runtime.FuncForPC(reflect.ValueOf(hf).Pointer()).Name(),
	}
	return wrap(builder, http.HandlerFunc(hf), fields).ServeHTTP
}

// WrapMuxHandler wraps a ServeMux, adding the pattern matched by each
// request. Wrap it once all the handlers have been registered.
func WrapMuxHandler(builder *libhoney.Builder, mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, req := common.StartRequest(r)
		_, pat := mux.Handler(r)
		req.AddField("mux.handler.pattern", pat)
		serve(builder, mux, req, w, r)
	})
}

func wrap(builder *libhoney.Builder, handler http.Handler, fields map[string]interface{}) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, req := common.StartRequest(r)
		for k, v := range fields {
			req.AddField(k, v)
		}
		serve(builder, handler, req, w, r)
	})
}

func serve(builder *libhoney.Builder, handler http.Handler, req *common.Request, w http.ResponseWriter, r *http.Request) {
	wrapped, status := common.WrapWriter(w)
	req.Time(RequestTimer, func() { handler.ServeHTTP(wrapped, r) })
	req.AddField("response.status_code", status.Status())
	req.Finish(builder)
}
