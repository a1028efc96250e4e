// Package stream broadcasts engine snapshots to websocket clients so a
// browser frontend can render the sandbox.
package stream

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/atomica/internal/engine"
	"github.com/san-kum/atomica/internal/logging"
)

const writeDeadline = 10 * time.Second

// Broadcaster fans engine snapshots out to every connected client. It
// implements engine.Observer, so it can be registered directly on the
// engine and pick up one frame per tick.
type Broadcaster struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	broadcast  chan engine.Snapshot
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
	log        logging.Logger
}

func NewBroadcaster(log logging.Logger) *Broadcaster {
	if log == nil {
		log = logging.Nop{}
	}
	b := &Broadcaster{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan engine.Snapshot, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log,
	}

	b.wg.Add(1)
	go b.run()

	return b
}

// OnTick queues the snapshot for broadcast. A full queue drops the frame;
// the next tick will carry fresher state anyway.
func (b *Broadcaster) OnTick(snap engine.Snapshot) {
	select {
	case b.broadcast <- snap:
	default:
		b.log.Debugf("broadcast queue full, dropping frame at t=%e", snap.Time)
	}
}

// Notify queues a snapshot, blocking until it is accepted, the context is
// canceled, or a timeout elapses.
func (b *Broadcaster) Notify(ctx context.Context, snap engine.Snapshot) error {
	select {
	case b.broadcast <- snap:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Second):
		return fmt.Errorf("stream: broadcast queue full")
	}
}

// ServeHTTP upgrades the request and registers the connection.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.log.Errorf("websocket upgrade failed: %v", err)
		return
	}

	select {
	case b.register <- conn:
	case <-b.done:
		conn.Close()
		return
	}

	// Drain (and discard) client reads so pings and close frames are
	// processed; unregister when the client goes away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case b.unregister <- conn:
				case <-b.done:
				}
				return
			}
		}
	}()
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *Broadcaster) run() {
	defer b.wg.Done()
	for {
		select {
		case <-b.done:
			return

		case conn := <-b.register:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			b.clients[conn] = true
			b.mu.Unlock()

		case conn := <-b.unregister:
			if conn == nil {
				continue
			}
			b.mu.Lock()
			if _, ok := b.clients[conn]; ok {
				delete(b.clients, conn)
				conn.Close()
			}
			b.mu.Unlock()

		case snap := <-b.broadcast:
			b.send(snap)
		}
	}
}

func (b *Broadcaster) send(snap engine.Snapshot) {
	payload, err := marshalFrame(snap)
	if err != nil {
		b.log.Errorf("failed to encode snapshot: %v", err)
		return
	}

	b.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for conn := range b.clients {
		conns = append(conns, conn)
	}
	b.mu.RUnlock()

	var failed []*websocket.Conn
	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			failed = append(failed, conn)
			conn.Close()
		}
	}

	if len(failed) > 0 {
		b.mu.Lock()
		for _, conn := range failed {
			delete(b.clients, conn)
		}
		b.mu.Unlock()
	}
}

// Close disconnects every client and stops the broadcast goroutine.
func (b *Broadcaster) Close() error {
	close(b.done)

	b.mu.Lock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
