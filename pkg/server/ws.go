package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/boracolakoglu/energy-dashboard/pkg/pipeline"
)

// handleWebSocket serves the reactive loop: the client gets a fresh
// dashboard on connect, then every option message it sends triggers one
// full pipeline re-run whose result is pushed back. A failed run sends an
// error frame and keeps the connection open for the next interaction.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	s.addWebSocketClient(conn)

	// Initial render with default options.
	s.runAndSend(conn, interactionRequest{})

	for {
		var req interactionRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "error", err)
			}
			s.removeWebSocketClient(conn)
			return
		}
		s.runAndSend(conn, req)
	}
}

func (s *Server) runAndSend(conn *websocket.Conn, req interactionRequest) {
	opts, err := s.parseOptions(req)
	if err != nil {
		s.sendError(conn, err)
		return
	}
	result, err := pipeline.Run(s.cfg, opts, s.logger)
	if err != nil {
		s.logger.Error("pipeline run failed", "error", err)
		s.sendError(conn, err)
		return
	}
	if err := conn.WriteJSON(result); err != nil {
		s.removeWebSocketClient(conn)
	}
}

func (s *Server) sendError(conn *websocket.Conn, err error) {
	if werr := conn.WriteJSON(errorResponse{Error: err.Error()}); werr != nil {
		s.removeWebSocketClient(conn)
	}
}

func (s *Server) addWebSocketClient(conn *websocket.Conn) {
	s.wsClientsMutex.Lock()
	s.wsClients[conn] = true
	s.wsClientsMutex.Unlock()
}

func (s *Server) removeWebSocketClient(conn *websocket.Conn) {
	s.wsClientsMutex.Lock()
	delete(s.wsClients, conn)
	s.wsClientsMutex.Unlock()
	conn.Close()
}

// CloseAll disconnects every websocket client; used on shutdown.
func (s *Server) CloseAll() {
	s.wsClientsMutex.Lock()
	for conn := range s.wsClients {
		conn.Close()
		delete(s.wsClients, conn)
	}
	s.wsClientsMutex.Unlock()
}
