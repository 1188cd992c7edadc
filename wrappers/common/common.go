// Package common holds the pieces shared by the stopwatch HTTP wrappers.
package common

import (
	"context"
	"io"
	"net/http"

	"github.com/felixge/httpsnoop"
	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/stopwatch-go"
	"github.com/honeycombio/stopwatch-go/honeycomb"
)

type requestKey struct{}

// Request is the per-request state behind the wrappers: a Stopwatch of its
// own plus the fields added to every event sent for it.
type Request struct {
	Stopwatch *stopwatch.Stopwatch
	fields    map[string]interface{}
	owner     bool
}

// AddField adds a field to every event sent for the request.
func (req *Request) AddField(key string, val interface{}) {
	req.fields[key] = val
}

// Time runs fn under the named timer. The request stopwatch always has a
// wall clock, so sampling can't fail.
func (req *Request) Time(name string, fn func()) {
	_ = req.Stopwatch.Time(name, fn)
}

// Finish sends one event per timer of the request through builder. Only the
// outermost wrapper of a request sends; the others return nil.
func (req *Request) Finish(builder *libhoney.Builder) error {
	if !req.owner {
		return nil
	}
	b := builder.Clone()
	for k, v := range req.fields {
		b.AddField(k, v)
	}
	return honeycomb.SendEvents(b, req.Stopwatch)
}

// StartRequest returns the Request attached to r's context. When no wrapper
// further out has made one, it creates a Request with a fresh real-time
// Stopwatch, puts both on the context and marks itself the owner.
func StartRequest(r *http.Request) (*http.Request, *Request) {
	ctx, req := StartContext(r.Context())
	if req.owner {
		for k, v := range GetRequestProps(r) {
			req.AddField(k, v)
		}
		r = r.WithContext(ctx)
	}
	return r, req
}

// StartContext is StartRequest for callers that only have a context.
func StartContext(ctx context.Context) (context.Context, *Request) {
	if outer, ok := ctx.Value(requestKey{}).(*Request); ok {
		return ctx, &Request{Stopwatch: outer.Stopwatch, fields: outer.fields}
	}
	sw := stopwatch.New(stopwatch.Config{Mode: stopwatch.ModeRealTime, Notices: io.Discard})
	req := &Request{Stopwatch: sw, fields: make(map[string]interface{}), owner: true}
	ctx = stopwatch.NewContext(ctx, sw)
	ctx = context.WithValue(ctx, requestKey{}, req)
	return ctx, req
}

// StatusRecorder remembers the status code written through a wrapped
// ResponseWriter.
type StatusRecorder struct {
	status int
}

// Status returns the written status, 200 when the handler never called
// WriteHeader.
func (s *StatusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// WrapWriter wraps w to catch the status code. The returned writer keeps the
// optional interfaces (Flusher, Hijacker, ...) that w implements.
func WrapWriter(w http.ResponseWriter) (http.ResponseWriter, *StatusRecorder) {
	rec := &StatusRecorder{}
	wrapped := httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				if rec.status == 0 {
					rec.status = code
				}
				next(code)
			}
		},
	})
	return wrapped, rec
}

// GetRequestProps is a convenient method to grab all common http request
// properties and get them back as a map.
func GetRequestProps(req *http.Request) map[string]interface{} {
	reqProps := make(map[string]interface{})
	reqProps["meta.type"] = "http_request"
	reqProps["request.method"] = req.Method
	reqProps["request.path"] = req.URL.Path
	reqProps["request.host"] = req.Host
	reqProps["request.http_version"] = req.Proto
	reqProps["request.remote_addr"] = req.RemoteAddr
	reqProps["request.header.user_agent"] = req.UserAgent()
	return reqProps
}
