package handler

import (
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stormlightlabs/inkfinite/internal/watcher"
)

// writeWait bounds how long a slow shell can stall a push.
const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // The server binds to localhost only
	},
}

// WSMessage is the envelope for every message pushed to the shell.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WorkspacePayload announces the active workspace when a shell connects.
type WorkspacePayload struct {
	Path string `json:"path,omitempty"`
}

// ChangePayload describes one changed workspace entry. Its fields mirror
// workspace.Entry so the shell can patch its listing in place.
type ChangePayload struct {
	Event string `json:"event"`
	Path  string `json:"path"`
	Name  string `json:"name"`
	IsDir bool   `json:"isDir"`
}

// WSHandler pushes workspace change events to connected shells.
type WSHandler struct {
	workspaceFn func() string

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool

	// wmu serializes writes; change events and the connect-time
	// announcement may otherwise interleave on the same connection.
	wmu sync.Mutex
}

// NewWSHandler creates a WebSocket handler. workspaceFn reports the
// currently active workspace directory for the connect announcement.
func NewWSHandler(workspaceFn func() string) *WSHandler {
	return &WSHandler{
		workspaceFn: workspaceFn,
		clients:     make(map[*websocket.Conn]bool),
	}
}

// HandleWS upgrades the connection, announces the active workspace, and
// keeps the connection open for change pushes.
func (h *WSHandler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer func() {
		h.removeClient(conn)
		_ = conn.Close()
	}()

	h.addClient(conn)

	workspace := ""
	if h.workspaceFn != nil {
		workspace = h.workspaceFn()
	}
	if err := h.send(conn, WSMessage{
		Type:    "workspace",
		Payload: WorkspacePayload{Path: workspace},
	}); err != nil {
		return
	}

	// Drain incoming messages until the shell disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// OnWorkspaceChange is called by the watcher when a workspace entry
// changes.
func (h *WSHandler) OnWorkspaceChange(event watcher.Event) {
	h.broadcast(WSMessage{
		Type: "workspaceChange",
		Payload: ChangePayload{
			Event: event.Type.String(),
			Path:  event.Path,
			Name:  filepath.Base(event.Path),
			IsDir: event.IsDir,
		},
	})
}

func (h *WSHandler) addClient(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *WSHandler) removeClient(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

func (h *WSHandler) send(conn *websocket.Conn, msg WSMessage) error {
	h.wmu.Lock()
	defer h.wmu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

func (h *WSHandler) broadcast(msg WSMessage) {
	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := h.send(client, msg); err != nil {
			h.removeClient(client)
		}
	}
}
