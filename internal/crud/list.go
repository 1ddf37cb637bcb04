package crud

import (
	"context"
	"sync"

	"horplus-console/internal/upstream"
)

// ListController owns the fetched collection for one entity type. The held
// slice is always the result of the most recent successful fetch; saves and
// deletes never mutate it directly.
type ListController[T any] struct {
	mu    sync.Mutex
	items []T
	// loading is guaranteed to terminate: every Refresh clears it on the
	// way out regardless of outcome.
	loading bool
	// gen identifies the newest fetch. A response carrying an older gen
	// lost the race to a newer Refresh and is discarded.
	gen uint64

	fetch     func(context.Context) ([]T, error)
	normalize func([]T) []T
	notifier  Notifier

	emptyNotFound   bool
	notFoundTitle   string
	notFoundText    string
	fetchFailedText string
}

type ListOption[T any] func(*ListController[T])

// WithNormalize applies fn to every successfully fetched collection before
// it is stored (sorting, date cleanup).
func WithNormalize[T any](fn func([]T) []T) ListOption[T] {
	return func(l *ListController[T]) { l.normalize = fn }
}

// WithEmptyOnNotFound treats an upstream 404 as "no records yet": the list
// becomes empty and the user gets an informational note, not an error.
func WithEmptyOnNotFound[T any](title, text string) ListOption[T] {
	return func(l *ListController[T]) {
		l.emptyNotFound = true
		l.notFoundTitle = title
		l.notFoundText = text
	}
}

// WithFetchFailedText overrides the fallback text of the fetch error
// notification.
func WithFetchFailedText[T any](text string) ListOption[T] {
	return func(l *ListController[T]) { l.fetchFailedText = text }
}

func NewListController[T any](fetch func(context.Context) ([]T, error), notifier Notifier, opts ...ListOption[T]) *ListController[T] {
	l := &ListController[T]{
		fetch:           fetch,
		notifier:        notifier,
		fetchFailedText: "Could not load data",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Refresh replaces the collection with a fresh fetch. On failure the held
// list is left as it was and the user is notified once.
func (l *ListController[T]) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.loading = true
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		// A newer fetch is in flight or already landed; this response no
		// longer matches the current request identity.
		return nil
	}
	l.loading = false

	if err != nil {
		if l.emptyNotFound && upstream.IsNotFound(err) {
			l.items = nil
			l.notifier.Info(l.notFoundTitle, l.notFoundText)
			return nil
		}
		title, text := upstream.Describe(err, l.fetchFailedText)
		l.notifier.Error(title, text)
		return err
	}

	if l.normalize != nil {
		items = l.normalize(items)
	}
	l.items = items
	return nil
}

// Items returns the current collection. Callers must treat it as read-only.
func (l *ListController[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

func (l *ListController[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}
