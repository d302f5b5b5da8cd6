// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/noldarim/portfolio/internal/archive"
	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/content"
	"github.com/noldarim/portfolio/internal/viewstate"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// WebSocket limits
	maxMessageSize = 16 << 10
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	writeWait      = 10 * time.Second
	maxSessions    = 1000
	sendBuffer     = 64
)

// newUpgrader creates a WebSocket upgrader that respects the configured allowed
// origins. When allowedOrigins is empty the upgrader accepts any origin
// (localhost development mode). When set, only those origins are permitted.
func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			_, ok := allowed[origin]
			return ok
		},
	}
}

// SessionState is the full page state pushed after every event.
type SessionState struct {
	Theme    viewstate.Theme  `json:"theme"`
	MenuOpen bool             `json:"menu_open"`
	Section  string           `json:"section,omitempty"`
	Contact  contact.Snapshot `json:"contact"`
}

// wsMessage is the envelope for client → server WebSocket messages.
type wsMessage struct {
	Type   string           `json:"type"`
	Region viewstate.Region `json:"region,omitempty"`
	Target string           `json:"target,omitempty"`
	Field  contact.Field    `json:"field,omitempty"`
	Value  string           `json:"value,omitempty"`
	Fields *contact.Form    `json:"fields,omitempty"`
}

// wsOutMessage is the envelope for server → client WebSocket messages.
type wsOutMessage struct {
	Type    string          `json:"type"` // "state", "error" or "content"
	State   *SessionState   `json:"state,omitempty"`
	Message string          `json:"message,omitempty"`
	Missing []contact.Field `json:"missing,omitempty"`
	Version int             `json:"version,omitempty"`
}

// SessionRegistry tracks connected live sessions.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[*session]struct{}
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[*session]struct{}),
	}
}

// Len returns the number of connected sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Broadcast queues msg on every session and returns how many accepted it.
func (r *SessionRegistry) Broadcast(msg wsOutMessage) int {
	data, err := json.Marshal(msg)
	if err != nil {
		getLog().Error().Err(err).Msg("Failed to marshal broadcast message")
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sent := 0
	for s := range r.sessions {
		select {
		case s.send <- data:
			sent++
		default:
			getLog().Warn().Str("session", s.id).Msg("Dropping broadcast for slow session")
		}
	}
	return sent
}

// CloseAll drops every connection. Each session then tears itself down.
func (r *SessionRegistry) CloseAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for s := range r.sessions {
		s.conn.Close()
	}
}

func (r *SessionRegistry) add(s *session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sessions) >= maxSessions {
		return false
	}
	r.sessions[s] = struct{}{}
	return true
}

func (r *SessionRegistry) remove(s *session) {
	r.mu.Lock()
	delete(r.sessions, s)
	r.mu.Unlock()
}

// session is one connected page. Only loop touches view, flow and section.
type session struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	inbox   chan wsMessage
	done    chan error
	view    *viewstate.State
	flow    *contact.Flow
	section string

	sender contact.Sender
	store  *content.Store
	// deliverCtx outlives the socket: a submission in flight is never
	// cancelled, its result is just dropped if the page is gone.
	deliverCtx context.Context
}

// HandleWebSocket upgrades an HTTP connection and runs a live session.
func HandleWebSocket(registry *SessionRegistry, sender contact.Sender, store *content.Store, allowedOrigins []string) http.HandlerFunc {
	upgrader := newUpgrader(allowedOrigins)

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			getLog().Error().Err(err).Msg("WebSocket upgrade failed")
			return
		}

		reqID := GetRequestID(r.Context())
		s := &session{
			id:         uuid.NewString(),
			conn:       conn,
			send:       make(chan []byte, sendBuffer),
			inbox:      make(chan wsMessage),
			done:       make(chan error, 1),
			view:       viewstate.New(viewstate.ThemeDark),
			flow:       contact.NewFlow(),
			sender:     sender,
			store:      store,
			deliverCtx: archive.WithRequestID(context.WithoutCancel(r.Context()), reqID),
		}
		if !registry.add(s) {
			getLog().Warn().Msg("WebSocket session limit reached")
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many connections"))
			conn.Close()
			return
		}
		getLog().Info().Str("session", s.id).Str("remote", r.RemoteAddr).Msg("Live session started")

		go s.writePump()
		go s.loop()
		s.readPump(registry)
	}
}

func (s *session) readPump(registry *SessionRegistry) {
	defer func() {
		registry.remove(s)
		close(s.inbox) // stops loop, which closes send
		s.conn.Close()
		getLog().Info().Str("session", s.id).Msg("Live session ended")
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				getLog().Error().Err(err).Msg("WebSocket read error")
			}
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			getLog().Warn().Err(err).Msg("Invalid WebSocket message")
			msg = wsMessage{Type: "invalid"}
		}
		s.inbox <- msg
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				getLog().Debug().Err(err).Msg("WebSocket write error")
				s.conn.Close()
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// loop is the session's single event loop. Deliveries run elsewhere and
// report back through done.
func (s *session) loop() {
	defer close(s.send)

	s.pushState()
	for {
		select {
		case msg, ok := <-s.inbox:
			if !ok {
				return
			}
			s.handle(msg)
		case err := <-s.done:
			res := s.flow.Finish(err)
			getLog().Debug().Str("session", s.id).Stringer("status", res.Status).Msg("Submission resolved")
			s.pushState()
		}
	}
}

func (s *session) handle(msg wsMessage) {
	switch msg.Type {
	case "toggle_theme":
		s.view.ToggleTheme()
	case "toggle_menu":
		s.view.ToggleMenu()
	case "close_menu":
		s.view.CloseMenu()
	case "pointer_down":
		s.view.PointerDown(msg.Region)
	case "navigate":
		if _, ok := s.store.Snapshot().Section(msg.Target); !ok {
			s.pushError(fmt.Sprintf("unknown section %q", msg.Target), nil)
			return
		}
		s.section = msg.Target
		s.view.Navigate()
	case "update_field":
		if err := s.flow.SetField(msg.Field, msg.Value); err != nil {
			s.pushError(err.Error(), nil)
			return
		}
	case "submit":
		s.submit(msg.Fields)
		return
	case "invalid":
		s.pushError("malformed message", nil)
		return
	default:
		s.pushError(fmt.Sprintf("unknown message type %q", msg.Type), nil)
		return
	}
	s.pushState()
}

func (s *session) submit(fields *contact.Form) {
	if s.flow.SubmitDisabled() {
		s.pushError(contact.ErrSubmitInProgress.Error(), nil)
		return
	}
	if fields != nil {
		s.flow.Fill(*fields)
	}

	form, err := s.flow.Begin()
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			s.pushError(err.Error(), verr.Missing)
			return
		}
		s.pushError(err.Error(), nil)
		return
	}
	s.pushState()

	sender, ctx, done := s.sender, s.deliverCtx, s.done
	go func() {
		done <- contact.Deliver(ctx, sender, form)
	}()
}

func (s *session) state() *SessionState {
	return &SessionState{
		Theme:    s.view.Theme(),
		MenuOpen: s.view.MenuOpen(),
		Section:  s.section,
		Contact:  s.flow.Snapshot(),
	}
}

func (s *session) pushState() {
	s.push(wsOutMessage{Type: "state", State: s.state()})
}

func (s *session) pushError(message string, missing []contact.Field) {
	s.push(wsOutMessage{Type: "error", Message: message, Missing: missing})
}

func (s *session) push(msg wsOutMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		getLog().Error().Err(err).Msg("Failed to marshal session message")
		return
	}
	select {
	case s.send <- data:
	default:
		getLog().Warn().Str("session", s.id).Str("type", msg.Type).Msg("Dropping message for slow session")
	}
}
