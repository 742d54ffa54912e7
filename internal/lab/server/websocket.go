package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
	"github.com/algebralab/algebralab/internal/algebra/converter"
	"github.com/algebralab/algebralab/internal/lab/service"
	"github.com/algebralab/algebralab/pkg/core/logging"
	"github.com/gorilla/websocket"
)

const (
	wsReadTimeout  = 120 * time.Second
	wsWriteTimeout = 10 * time.Second
	wsMaxMessage   = 64 * 1024
)

// WSMessage is a request envelope: {"type": "Divide", "payload": {...}}.
// An optional id is echoed in the response.
type WSMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSResponse is a response envelope. Type is the request type, "pong" or
// "error".
type WSResponse struct {
	ID      string      `json:"id,omitempty"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketHandler serves the lab methods over WebSocket for browser pages.
type WebSocketHandler struct {
	service  *service.Service
	upgrader websocket.Upgrader
	logger   *logging.Logger
}

// NewWebSocketHandler creates a new WebSocket handler. An empty origin list
// accepts every origin.
func NewWebSocketHandler(svc *service.Service, allowedOrigins []string) *WebSocketHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WebSocketHandler{
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				return allowed[r.Header.Get("Origin")]
			},
		},
		logger: logging.New("lab-websocket"),
	}
}

// wsConn serialises writes to one connection and owns its converter session.
type wsConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	session *converter.Session
}

func (c *wsConn) send(resp WSResponse) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteJSON(resp)
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(r.Context(), conn)
}

func (h *WebSocketHandler) handleConnection(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	h.logger.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := &wsConn{conn: conn, session: converter.NewSession()}

	conn.SetReadLimit(wsMaxMessage)
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error", "error", err)
			} else {
				h.logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		resp := h.handleMessage(ctx, c, msg)
		if err := c.send(resp); err != nil {
			h.logger.Error("WebSocket send error", "error", err)
			return
		}
	}
}

// handleMessage answers one envelope. Requests on one connection are
// handled in order.
func (h *WebSocketHandler) handleMessage(ctx context.Context, c *wsConn, msg WSMessage) WSResponse {
	switch msg.Type {
	case "ping":
		return WSResponse{ID: msg.ID, Type: "pong", Payload: map[string]int64{"time": time.Now().Unix()}}

	case MethodConvertComplex:
		return h.convert(ctx, c, msg)
	}

	result, err := dispatch(ctx, h.service, msg.Type, msg.Payload)
	if err != nil {
		return errorResponse(msg.ID, err)
	}
	return WSResponse{ID: msg.ID, Type: msg.Type, Payload: result}
}

// convert goes through the connection's converter session so that the
// update produced for one form is never fed back as a new request.
func (h *WebSocketHandler) convert(ctx context.Context, c *wsConn, msg WSMessage) WSResponse {
	var req service.ConvertRequest
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorResponse(msg.ID, mdwerror.Wrap(err, "invalid payload").WithCode(mdwerror.CodeInvalidInput))
		}
	}
	resp, err := h.service.ConvertInSession(ctx, c.session, &req)
	if err != nil {
		return errorResponse(msg.ID, err)
	}
	return WSResponse{ID: msg.ID, Type: msg.Type, Payload: resp}
}

func errorResponse(id string, err error) WSResponse {
	return WSResponse{
		ID:   id,
		Type: "error",
		Payload: WSErrorPayload{
			Code:    mdwerror.GetCode(err).String(),
			Message: service.Message(err),
		},
	}
}
