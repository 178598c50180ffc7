package ws

import (
	"log"
	"net/http"

	"sentinela/internal/get_token"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	hub *Hub
}

func NewWsHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
	}
}

var upgrade = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWs godoc
// @Summary Feed de monitoramento.
// @Description Conecta o operador ao feed de eventos em tempo real.
// @Tags Monitor
// @Success 101 {string} string "Conexão atualizada para websocket"
// @Router /ws/monitor [get]
// @Security ApiKeyAuth
func (h *Handler) HandleWs(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	conn, err := upgrade.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println(err)
		return err
	}

	cl := &Client{
		Conn:       conn,
		Send:       make(chan []byte, 10),
		OperadorID: payload.OperadorID,
		Matricula:  payload.Matricula,
		Nome:       payload.Nome,
	}

	h.hub.Register <- cl

	go cl.writeMessage()
	cl.readMessage(h.hub)

	return nil
}
