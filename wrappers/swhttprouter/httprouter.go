// Package swhttprouter wraps httprouter handles with a per-request Stopwatch.
//
// The timer covering the handle is named after the handle's function, since
// httprouter doesn't hand the matched pattern to the handle.
package swhttprouter

import (
	"net/http"
	"reflect"
	"runtime"

	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/stopwatch-go/wrappers/common"
	"github.com/julienschmidt/httprouter"
)

// Middleware times handle and sends the request's timers through builder.
func Middleware(builder *libhoney.Builder, handle httprouter.Handle) httprouter.Handle {
	handlerName := runtime.FuncForPC(reflect.ValueOf(handle).Pointer()).Name()
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		r, req := common.StartRequest(r)
		// pull out any variables in the URL
		for _, param := range ps {
			req.AddField("handler.vars."+param.Key, param.Value)
		}
		req.AddField("handler.name", handlerName)
		wrapped, status := common.WrapWriter(w)
		req.Time(handlerName, func() { handle(wrapped, r, ps) })
		req.AddField("response.status_code", status.Status())
		req.Finish(builder)
	}
}
