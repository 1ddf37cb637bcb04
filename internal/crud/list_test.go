package crud

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"

	"horplus-console/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRefreshStoresItems(t *testing.T) {
	notifier := &recordingNotifier{}
	list := NewListController(func(ctx context.Context) ([]int, error) {
		return []int{3, 1, 2}, nil
	}, notifier)

	require.NoError(t, list.Refresh(context.Background()))
	assert.Equal(t, []int{3, 1, 2}, list.Items())
	assert.False(t, list.Loading())
	assert.Empty(t, notifier.all())
}

func TestListRefreshAppliesNormalize(t *testing.T) {
	list := NewListController(func(ctx context.Context) ([]int, error) {
		return []int{3, 1, 2}, nil
	}, &recordingNotifier{}, WithNormalize(func(items []int) []int {
		sort.Ints(items)
		return items
	}))

	require.NoError(t, list.Refresh(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, list.Items())
}

func TestListRefreshFailureKeepsPreviousItems(t *testing.T) {
	notifier := &recordingNotifier{}
	fail := false
	list := NewListController(func(ctx context.Context) ([]int, error) {
		if fail {
			return nil, &upstream.StatusError{Status: 500, Message: "boom"}
		}
		return []int{1, 2}, nil
	}, notifier)

	require.NoError(t, list.Refresh(context.Background()))
	fail = true
	require.Error(t, list.Refresh(context.Background()))

	assert.Equal(t, []int{1, 2}, list.Items(), "failed fetch must not clear the held list")
	assert.False(t, list.Loading(), "loading must terminate on failure")

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "error", last.Level)
	assert.Equal(t, "Server error [500]", last.Title)
	assert.Equal(t, "boom", last.Text)
}

func TestListNotFoundTreatedAsEmpty(t *testing.T) {
	notifier := &recordingNotifier{}
	list := NewListController(func(ctx context.Context) ([]int, error) {
		return nil, &upstream.StatusError{Status: 404}
	}, notifier, WithEmptyOnNotFound[int]("No bills", "This room has no bills yet"))

	require.NoError(t, list.Refresh(context.Background()))
	assert.Empty(t, list.Items())

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "info", last.Level)
	assert.Equal(t, "No bills", last.Title)
}

func TestListNotFoundWithoutOptionIsAnError(t *testing.T) {
	notifier := &recordingNotifier{}
	list := NewListController(func(ctx context.Context) ([]int, error) {
		return nil, &upstream.StatusError{Status: 404}
	}, notifier)

	require.Error(t, list.Refresh(context.Background()))
	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "error", last.Level)
}

func TestListStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls atomic.Int32

	list := NewListController(func(ctx context.Context) ([]int, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []int{1}, nil // stale
		}
		return []int{2}, nil
	}, &recordingNotifier{})

	done := make(chan error, 1)
	go func() { done <- list.Refresh(context.Background()) }()
	<-started

	// A newer refresh lands while the first fetch is still in flight
	require.NoError(t, list.Refresh(context.Background()))
	assert.Equal(t, []int{2}, list.Items())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []int{2}, list.Items(), "the older response must not overwrite the newer one")
}

func TestListRefreshIsIdempotentWhenDataUnchanged(t *testing.T) {
	list := NewListController(func(ctx context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	}, &recordingNotifier{})

	require.NoError(t, list.Refresh(context.Background()))
	first := append([]int(nil), list.Items()...)
	require.NoError(t, list.Refresh(context.Background()))
	assert.Equal(t, first, list.Items())
}

func TestListTransportErrorNotifiesConnectionFailed(t *testing.T) {
	notifier := &recordingNotifier{}
	list := NewListController(func(ctx context.Context) ([]int, error) {
		return nil, &upstream.TransportError{Err: errors.New("dial tcp: connection refused")}
	}, notifier, WithFetchFailedText[int]("Could not load rooms"))

	require.Error(t, list.Refresh(context.Background()))
	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, "Connection failed", last.Title)
	assert.Equal(t, "Could not reach the server, please try again", last.Text)
}
