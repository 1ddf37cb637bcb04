package monitoring

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"horplus-console/internal/health"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Broadcaster pushes periodic health snapshots to the ops page over
// websocket so the view updates without polling.
type Broadcaster struct {
	checker    *health.Checker
	interval   time.Duration
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
}

func NewBroadcaster(checker *health.Checker, interval time.Duration) *Broadcaster {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Broadcaster{
		checker:  checker,
		interval: interval,
		clients:  make(map[*websocket.Conn]bool),
	}
}

// Run samples and broadcasts until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.closeAll()
			return
		case <-ticker.C:
			b.broadcast(b.checker.Check(ctx))
		}
	}
}

func (b *Broadcaster) broadcast(st health.Status) {
	payload, err := json.Marshal(st)
	if err != nil {
		return
	}

	b.clientsMux.Lock()
	defer b.clientsMux.Unlock()
	for conn := range b.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(b.clients, conn)
		}
	}
}

func (b *Broadcaster) closeAll() {
	b.clientsMux.Lock()
	defer b.clientsMux.Unlock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
}

// HandleWS upgrades the connection and keeps it registered until the
// client goes away.
func (b *Broadcaster) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Monitoring] Websocket upgrade failed: %v", err)
		return
	}

	b.clientsMux.Lock()
	b.clients[conn] = true
	b.clientsMux.Unlock()

	// Drain reads; an error means the client disconnected
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				b.clientsMux.Lock()
				if _, ok := b.clients[conn]; ok {
					conn.Close()
					delete(b.clients, conn)
				}
				b.clientsMux.Unlock()
				return
			}
		}
	}()
}

// StatsHandler serves one snapshot as JSON for clients without websocket.
func (b *Broadcaster) StatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b.checker.Check(r.Context()))
}
