package server

import (
	"apple-chase/internal/engine"
	"apple-chase/pkg/api"
	"apple-chase/pkg/logger"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Service *engine.GameService
	Conn    *websocket.Conn
	ConnID  string
	Send    <-chan api.ServerMessage

	log *logrus.Entry
}

// NewClient выдает соединению ID и сразу подписывает его в Hub,
// чтобы IDENTITY не потерялся между Connect и запуском writePump.
func NewClient(service *engine.GameService, conn *websocket.Conn) *Client {
	id := uuid.NewString()
	return &Client{
		Service: service,
		Conn:    conn,
		ConnID:  id,
		Send:    service.Hub.Register(id),
		log:     logger.ForConn(id),
	}
}

// Start сообщает сервису о новом соединении и запускает пампы
func (c *Client) Start() error {
	if err := c.Service.Connect(c.ConnID); err != nil {
		c.Service.Hub.Unregister(c.ConnID)
		c.closeConn()
		return err
	}

	c.log.WithField("remote", c.Conn.RemoteAddr().String()).Info("Client connected")
	go c.writePump()
	go c.readPump()
	return nil
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		// Отключение всегда проходит через сервис: он удалит игроков и разошлет список
		if err := c.Service.Disconnect(c.ConnID); err != nil {
			c.Service.Hub.Unregister(c.ConnID)
		}
		c.closeConn()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.log.Errorf("WS Error: %v", err)
			}
			return
		}

		// Битый кадр отбрасываем, соединение живет дальше
		var cmd api.ClientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.log.WithError(err).Warn("Malformed frame dropped")
			continue
		}

		if err := c.Service.Submit(c.ConnID, cmd); err != nil {
			if errors.Is(err, engine.ErrServiceStopped) {
				return
			}
			c.log.WithError(err).Warn("Command rejected")
		}
	}
}

// writePump отправляет данные клиенту + Ping.
// Канал Send закрывает Hub при отключении, тогда уходит close-кадр.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.closeConn()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func (c *Client) closeConn() {
	if err := c.Conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		c.log.WithError(err).Debug("failed to close websocket connection")
	}
}
