package ws

import (
	"github.com/gorilla/websocket"
)

type Client struct {
	Conn       *websocket.Conn `json:"conn"`
	Send       chan []byte     `json:"send"`
	OperadorID int64           `json:"operador_id"`
	Matricula  string          `json:"matricula"`
	Nome       string          `json:"nome"`
}

func (c *Client) writeMessage() {
	defer func() {
		err := c.Conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		message, ok := <-c.Send
		if !ok {
			return
		}

		err := c.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			return
		}
	}
}

// readMessage descarta mensagens do cliente; o feed é somente de saída, mas a
// leitura é necessária para detectar a desconexão.
func (c *Client) readMessage(hub *Hub) {
	defer func() {
		hub.Unregister <- c
		err := c.Conn.Close()
		if err != nil {
			return
		}
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
