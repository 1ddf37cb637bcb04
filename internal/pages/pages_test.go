package pages

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"horplus-console/internal/upstream"
)

// notification captures one notifier call for assertions.
type notification struct {
	Level string
	Title string
	Text  string
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []notification
}

func (n *recordingNotifier) Success(title, text string) { n.record("success", title, text) }
func (n *recordingNotifier) Error(title, text string)   { n.record("error", title, text) }
func (n *recordingNotifier) Info(title, text string)    { n.record("info", title, text) }

func (n *recordingNotifier) record(level, title, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{Level: level, Title: title, Text: text})
}

func (n *recordingNotifier) last() (notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) == 0 {
		return notification{}, false
	}
	return n.calls[len(n.calls)-1], true
}

type stubConfirmer struct{ answer bool }

func (c *stubConfirmer) Confirm(title, text string) bool { return c.answer }

// recordedCall is one request the fake upstream saw, in arrival order.
type recordedCall struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type callLog struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (l *callLog) add(c recordedCall) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

func (l *callLog) all() []recordedCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedCall(nil), l.calls...)
}

func (l *callLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

// matching returns the calls whose method and path both match.
func (l *callLog) matching(method, path string) []recordedCall {
	var out []recordedCall
	for _, c := range l.all() {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// newFakeUpstream starts a fake HorPlus API that logs every request before
// delegating to handler.
func newFakeUpstream(t *testing.T, handler http.HandlerFunc) (*upstream.Client, *callLog) {
	t.Helper()
	log := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		log.add(recordedCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
		})
		// Let the delegate parse the body too (multipart uploads)
		r.Body = io.NopCloser(bytes.NewReader(body))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return upstream.New(srv.URL, 5*time.Second), log
}
