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

func TestHomeDerivedCounts(t *testing.T) {
	api, _ := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users":
			json.NewEncoder(w).Encode([]models.User{
				{UserID: 1, Role: "user"},
				{UserID: 2, Role: "admin"},
				{UserID: 3, Role: "user"},
			})
		case "/api/rooms":
			json.NewEncoder(w).Encode([]models.Room{
				{RoomID: 1, Status: "available"},
				{RoomID: 2, Status: "occupied"},
				{RoomID: 3, Status: "available"},
			})
		default:
			http.NotFound(w, r)
		}
	})
	page := NewHomePage(api, &recordingNotifier{})

	require.NoError(t, page.Load(context.Background()))

	assert.Equal(t, 2, page.TenantCount())
	assert.Equal(t, 2, page.AvailableRoomCount())
}

func TestHomeCountsRecomputedAfterRefetch(t *testing.T) {
	available := 1
	api, _ := newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users":
			json.NewEncoder(w).Encode([]models.User{})
		case "/api/rooms":
			rooms := make([]models.Room, available)
			for i := range rooms {
				rooms[i] = models.Room{RoomID: int64(i + 1), Status: "available"}
			}
			json.NewEncoder(w).Encode(rooms)
		default:
			http.NotFound(w, r)
		}
	})
	page := NewHomePage(api, &recordingNotifier{})

	require.NoError(t, page.Load(context.Background()))
	assert.Equal(t, 1, page.AvailableRoomCount())

	available = 3
	require.NoError(t, page.Load(context.Background()))
	assert.Equal(t, 3, page.AvailableRoomCount(), "derived figures follow the latest fetch")
}
