package network

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"clothsim/protocol"
	"clothsim/room"
)

const (
	DefaultRoom  = "LOBBY"
	readLimit    = 1 << 20 // 1MB
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingEvery    = 25 * time.Second
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a websocket to room.Conn. gorilla allows one concurrent
// writer, so the room and the ping loop share mu.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Handler upgrades /ws?room=CODE, waits for a hello, joins the room and then
// forwards tear and resize messages until the socket closes.
func Handler(m *room.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("room")
		if code == "" {
			code = DefaultRoom
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(readLimit)
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			return nil
		})

		hello, err := readHello(conn)
		if err != nil {
			log.Println("hello:", err)
			return
		}

		rm, err := m.GetOrCreateRoom(code)
		if err != nil {
			log.Println("room:", err)
			return
		}

		wc := &wsConn{conn: conn}
		reply := make(chan room.JoinResult, 1)
		if !rm.Post(room.Join{Conn: wc, Name: hello.Name, Reply: reply}) {
			return
		}
		var clientID string
		select {
		case res := <-reply:
			clientID = res.ClientID
		case <-rm.Done():
			log.Printf("room %s stopped before join", code)
			return
		}
		log.Printf("client %s (%q) joined room %s", clientID, hello.Name, code)
		defer func() {
			rm.Post(room.Leave{ClientID: clientID})
			log.Printf("client %s left room %s", clientID, code)
		}()

		done := make(chan struct{})
		defer close(done)
		go func() {
			ticker := time.NewTicker(pingEvery)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if err := wc.ping(); err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Println("read:", err)
				}
				return
			}
			cmd, err := decodeCommand(clientID, msg)
			if err != nil {
				log.Printf("client %s: %v", clientID, err)
				continue
			}
			if cmd == nil {
				continue
			}
			if !rm.Post(cmd) {
				return
			}
		}
	}
}

func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, &UnexpectedMessageError{Got: env.T, Want: protocol.MsgHello}
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

// decodeCommand maps a client envelope to a room command. Unknown message
// types yield a nil command.
func decodeCommand(clientID string, msg []byte) (any, error) {
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return nil, err
	}
	switch env.T {
	case protocol.MsgTear:
		t, err := protocol.DecodePayload[protocol.Tear](env)
		if err != nil {
			return nil, err
		}
		return room.Tear{ClientID: clientID, X: t.X, Y: t.Y}, nil
	case protocol.MsgResize:
		rs, err := protocol.DecodePayload[protocol.Resize](env)
		if err != nil {
			return nil, err
		}
		return room.Resize{ClientID: clientID, W: rs.W, H: rs.H}, nil
	}
	return nil, nil
}

type UnexpectedMessageError struct {
	Got, Want string
}

func (e *UnexpectedMessageError) Error() string {
	return "unexpected message " + e.Got + ", want " + e.Want
}

// RoomsHandler lists rooms on GET and creates one on POST.
func RoomsHandler(m *room.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(m.ListRooms())
		case http.MethodPost:
			code, err := m.CreateRoom()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"code": code})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
