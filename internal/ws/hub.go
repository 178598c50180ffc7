package ws

import "sync"

// Hub mantém os operadores conectados ao monitor e replica cada evento para
// todos eles.
type Hub struct {
	Clients    map[int64]*Client
	Register   chan *Client
	Unregister chan *Client
	Events     chan []byte
	Mu         *sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[int64]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Events:     make(chan []byte, 16),
		Mu:         &sync.RWMutex{},
	}
}

func (h *Hub) Run() {
	for {
		select {
		case cl := <-h.Register:
			h.Mu.Lock()
			if existing, ok := h.Clients[cl.OperadorID]; ok {
				close(existing.Send)
			}
			h.Clients[cl.OperadorID] = cl
			h.Mu.Unlock()

		case cl := <-h.Unregister:
			h.Mu.Lock()
			if current, ok := h.Clients[cl.OperadorID]; ok && current == cl {
				delete(h.Clients, cl.OperadorID)
				close(cl.Send)
			}
			h.Mu.Unlock()

		case event := <-h.Events:
			h.Mu.RLock()
			for _, cl := range h.Clients {
				select {
				case cl.Send <- event:
				default:
				}
			}
			h.Mu.RUnlock()
		}
	}
}

// Broadcast enfileira o evento para todos os operadores conectados.
func (h *Hub) Broadcast(event []byte) {
	select {
	case h.Events <- event:
	default:
	}
}
