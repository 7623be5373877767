// Package ws раздаёт уведомления симуляции наблюдателям по WebSocket.
// Симуляция никогда не ждёт клиентов: медленный клиент теряет сообщения.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"alien-defense/internal/event"
)

const clientBuffer = 256

// Message — один кадр ленты уведомлений
type Message struct {
	Type event.EventType `json:"type"`
	Seq  uint64          `json:"seq"`
	Data interface{}     `json:"data,omitempty"`
}

type Server struct {
	log *log.Logger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64
	seq      atomic.Uint64
	dropped  atomic.Uint64

	mu      sync.Mutex
	clients map[string]chan []byte
}

func NewServer(logger *log.Logger) *Server {
	return &Server{
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // только loopback, см. WSHandler
		},
		clients: make(map[string]chan []byte),
	}
}

// Attach подписывает сервер на все уведомления диспетчера
func (s *Server) Attach(d *event.Dispatcher) {
	for _, t := range event.Notifications {
		d.Subscribe(t, s)
	}
}

func (s *Server) OnEvent(e event.Event) {
	b, err := json.Marshal(Message{Type: e.Type, Seq: s.seq.Add(1), Data: e.Data})
	if err != nil {
		s.log.Printf("ws: encode %s: %v", e.Type, err)
		return
	}
	s.Publish(b)
}

// Publish рассылает кадр всем клиентам без блокировки
func (s *Server) Publish(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, out := range s.clients {
		select {
		case out <- b:
		default:
			s.dropped.Add(1)
		}
	}
}

// Clients — число подключённых наблюдателей
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Dropped — сколько кадров не досталось медленным клиентам
func (s *Server) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Server) join() (string, chan []byte) {
	sid := fmt.Sprintf("O%d", s.nextID.Add(1))
	out := make(chan []byte, clientBuffer)
	s.mu.Lock()
	s.clients[sid] = out
	s.mu.Unlock()
	return sid, out
}

func (s *Server) leave(sid string) {
	s.mu.Lock()
	delete(s.clients, sid)
	s.mu.Unlock()
}

func (s *Server) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		sid, out := s.join()
		defer s.leave(sid)
		s.log.Printf("ws: observer %s connected from %s", sid, r.RemoteAddr)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		writeErr := make(chan error, 1)
		go func() {
			for {
				select {
				case <-ctx.Done():
					writeErr <- ctx.Err()
					return
				case b := <-out:
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						writeErr <- err
						return
					}
				}
			}
		}()

		// Входящие сообщения не нужны; чтение только замечает закрытие соединения.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		cancel()
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
		select {
		case <-writeErr:
		case <-time.After(500 * time.Millisecond):
		}
		s.log.Printf("ws: observer %s disconnected", sid)
	}
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
