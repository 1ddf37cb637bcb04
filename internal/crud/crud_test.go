package crud

import (
	"sync"
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

func (n *recordingNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.calls...)
}

func (n *recordingNotifier) last() (notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) == 0 {
		return notification{}, false
	}
	return n.calls[len(n.calls)-1], true
}

// stubConfirmer answers every confirmation the same way.
type stubConfirmer struct {
	answer bool
	asked  int
}

func (c *stubConfirmer) Confirm(title, text string) bool {
	c.asked++
	return c.answer
}
