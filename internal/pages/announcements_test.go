package pages

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"horplus-console/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func announcementsFake(t *testing.T, items []models.Announcement) (*AnnouncementsPage, *callLog, *recordingNotifier) {
	t.Helper()
	api, log := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/announcements":
			json.NewEncoder(w).Encode(items)
		case r.Method == http.MethodPost && r.URL.Path == "/api/announcements":
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})
	notifier := &recordingNotifier{}
	return NewAnnouncementsPage(api, notifier, &stubConfirmer{answer: true}), log, notifier
}

func TestAnnouncementsNewestFirst(t *testing.T) {
	page, _, _ := announcementsFake(t, []models.Announcement{
		{AnnouncementID: 1, Title: "old"},
		{AnnouncementID: 3, Title: "newest"},
		{AnnouncementID: 2, Title: "middle"},
	})

	require.NoError(t, page.Load(context.Background()))

	items := page.List.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].Title)
	assert.Equal(t, "old", items[2].Title)
}

func TestAnnouncementMissingFieldsRejected(t *testing.T) {
	page, log, notifier := announcementsFake(t, nil)

	page.Dialog.OpenAdd()
	page.Dialog.Apply(func(f *AnnouncementForm) { f.Title = "water outage" }) // detail missing

	require.Error(t, page.Save(context.Background()))
	assert.Zero(t, log.count())
	last, _ := notifier.last()
	assert.Equal(t, "Missing fields", last.Title)
}

func TestAnnouncementCreateThenRefetch(t *testing.T) {
	page, log, _ := announcementsFake(t, nil)

	page.Dialog.OpenAdd()
	page.Dialog.Apply(func(f *AnnouncementForm) {
		f.Title = "water outage"
		f.Detail = "Maintenance on Friday morning"
	})

	require.NoError(t, page.Save(context.Background()))

	calls := log.all()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.JSONEq(t, `{"title":"water outage","detail":"Maintenance on Friday morning"}`, calls[0].Body)
	assert.Equal(t, http.MethodGet, calls[1].Method, "success refetches the list")
	assert.False(t, page.Dialog.IsOpen())
}

func TestAnnouncementUpdate(t *testing.T) {
	page, log, _ := announcementsFake(t, nil)

	page.OpenEdit(models.Announcement{AnnouncementID: 4, Title: "t", Detail: "d"})
	page.Dialog.Apply(func(f *AnnouncementForm) { f.Detail = "updated detail" })

	require.NoError(t, page.Save(context.Background()))
	puts := log.matching(http.MethodPut, "/api/announcements/4")
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{"title":"t","detail":"updated detail"}`, puts[0].Body)
}
