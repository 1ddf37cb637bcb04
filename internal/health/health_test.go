package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"horplus-console/internal/upstream"

	"github.com/stretchr/testify/assert"
)

func TestCheckReportsOKWhenUpstreamAnswers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	st := NewChecker(upstream.New(srv.URL, time.Second)).Check(context.Background())
	assert.Equal(t, "ok", st.Status)
	assert.True(t, st.UpstreamOK)
	assert.NotEmpty(t, st.Uptime)
}

func TestCheckStatusErrorStillCountsAsReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	st := NewChecker(upstream.New(srv.URL, time.Second)).Check(context.Background())
	assert.Equal(t, "ok", st.Status, "a 4xx proves the host answered")
	assert.True(t, st.UpstreamOK)
}

func TestCheckDegradedOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // unreachable

	st := NewChecker(upstream.New(srv.URL, time.Second)).Check(context.Background())
	assert.Equal(t, "degraded", st.Status)
	assert.False(t, st.UpstreamOK)
	assert.NotEmpty(t, st.UpstreamError)
}
