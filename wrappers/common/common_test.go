package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/libhoney-go/transmission"
	"github.com/honeycombio/stopwatch-go"
	"github.com/honeycombio/stopwatch-go/honeycomb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLibhoney(t *testing.T) (*libhoney.Builder, *transmission.MockSender) {
	t.Helper()
	mo := &transmission.MockSender{}
	client, err := honeycomb.NewClient(honeycomb.Config{APIHost: "placeholder", Transmission: mo})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client.NewBuilder(), mo
}

func TestStartRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/hello", nil)
	r, req := StartRequest(r)
	require.NotNil(t, req.Stopwatch)
	assert.True(t, req.owner, "the first wrapper owns the request")
	assert.Equal(t, req.Stopwatch, stopwatch.FromContext(r.Context()), "the stopwatch should be on the request context")
	assert.Equal(t, stopwatch.ModeRealTime, req.Stopwatch.Mode())
	assert.Equal(t, "GET", req.fields["request.method"])
	assert.Equal(t, "/hello", req.fields["request.path"])

	r2, inner := StartRequest(r)
	assert.False(t, inner.owner, "a nested wrapper shares the outer request")
	assert.Equal(t, req.Stopwatch, inner.Stopwatch)
	assert.Equal(t, r, r2)
	inner.AddField("inner", 1)
	assert.Equal(t, 1, req.fields["inner"], "fields added by a nested wrapper reach the owner")
}

func TestStartContextKeepsRequestsApart(t *testing.T) {
	_, a := StartContext(context.Background())
	_, b := StartContext(context.Background())
	assert.NotEqual(t, a.Stopwatch.ID(), b.Stopwatch.ID(), "each request gets its own stopwatch")
}

func TestFinish(t *testing.T) {
	builder, mo := setupLibhoney(t)
	r := httptest.NewRequest("POST", "/items", nil)
	r, req := StartRequest(r)
	req.Time("handler", func() {})
	req.AddField("response.status_code", 201)

	_, inner := StartRequest(r)
	require.NoError(t, inner.Finish(builder))
	assert.Empty(t, mo.Events(), "only the owner sends")

	require.NoError(t, req.Finish(builder))
	evs := mo.Events()
	require.Equal(t, 1, len(evs))
	assert.Equal(t, "handler", evs[0].Data["name"])
	assert.Equal(t, "POST", evs[0].Data["request.method"])
	assert.Equal(t, 201, evs[0].Data["response.status_code"])
	assert.Equal(t, 1, evs[0].Data["stops"])
}


func TestWrapWriter(t *testing.T) {
	w, status := WrapWriter(httptest.NewRecorder())
	w.Write([]byte("hi"))
	assert.Equal(t, http.StatusOK, status.Status(), "no WriteHeader means 200")

	rec := httptest.NewRecorder()
	w, status = WrapWriter(rec)
	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusTeapot, status.Status(), "the first status written wins")
	assert.Equal(t, http.StatusTeapot, rec.Code)

	w, _ = WrapWriter(httptest.NewRecorder())
	_, ok := w.(http.Flusher)
	assert.True(t, ok, "the wrapped writer keeps the Flusher interface")
}
