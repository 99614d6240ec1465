package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/getmorediners/backend/internal/auth"
	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/events"
	"github.com/getmorediners/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const wsWriteTimeout = 5 * time.Second

// wsClient serializes writes to a single socket.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// WSHub pushes campaign events to the owning user's open sockets.
type WSHub struct {
	cfg        *config.Config
	subscriber events.Subscriber
	revoker    middleware.TokenRevoker
	log        *zap.Logger

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*wsClient]struct{}
}

func NewWSHub(cfg *config.Config, subscriber events.Subscriber, revoker middleware.TokenRevoker, log *zap.Logger) *WSHub {
	return &WSHub{
		cfg:        cfg,
		subscriber: subscriber,
		revoker:    revoker,
		log:        log,
		clients:    make(map[uuid.UUID]map[*wsClient]struct{}),
	}
}

// Start subscribes to campaign events until ctx is done.
func (h *WSHub) Start(ctx context.Context) error {
	return h.subscriber.Subscribe(ctx, events.StreamCampaign, h.dispatch)
}

func (h *WSHub) dispatch(event events.Event) {
	userID, ok := event.UserID()
	if !ok {
		h.log.Warn("campaign event without owner dropped", zap.String("type", event.Type))
		return
	}
	h.SendToUser(userID, event)
}

// SendToUser writes event to every socket userID has open. It returns the
// number of sockets written.
func (h *WSHub) SendToUser(userID uuid.UUID, event events.Event) int {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("failed to encode event", zap.String("type", event.Type), zap.Error(err))
		return 0
	}

	h.mu.RLock()
	targets := make([]*wsClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	sent := 0
	for _, c := range targets {
		if err := c.write(data); err != nil {
			h.log.Debug("websocket write failed", zap.String("user_id", userID.String()), zap.Error(err))
			continue
		}
		sent++
	}
	return sent
}

// Connections reports how many sockets a user has open.
func (h *WSHub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *WSHub) register(userID uuid.UUID, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[userID]
	if !ok {
		set = make(map[*wsClient]struct{})
		h.clients[userID] = set
	}
	set[c] = struct{}{}
}

func (h *WSHub) unregister(userID uuid.UUID, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[userID]
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

// WSUpgradeMiddleware rejects plain http requests on the socket route.
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// HandleWS authenticates with the token query parameter, then holds the
// socket open until the client disconnects.
func (h *WSHub) HandleWS(conn *websocket.Conn) {
	claims, reason := h.authenticate(conn.Query("token"))
	if claims == nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason))
		_ = conn.Close()
		return
	}

	client := &wsClient{conn: conn}
	h.register(claims.UserID, client)
	h.log.Debug("websocket connected", zap.String("user_id", claims.UserID.String()))

	defer func() {
		h.unregister(claims.UserID, client)
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *WSHub) authenticate(token string) (*auth.Claims, string) {
	if token == "" {
		return nil, "missing token"
	}
	claims, err := auth.ParseJWT(h.cfg.JWTSecret, token)
	if err != nil {
		return nil, "invalid token"
	}
	revoked, err := h.revoker.IsRevoked(context.Background(), claims.TokenID())
	if err != nil {
		h.log.Warn("revocation check failed, allowing socket", zap.Error(err))
	}
	if revoked {
		return nil, "session has ended"
	}
	return claims, ""
}
