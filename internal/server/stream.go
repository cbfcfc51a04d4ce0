package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/gridplan/grid"
)

// Stream message types.
const (
	msgExpand = "x"
	msgResult = "r"
	msgError  = "e"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// streamMessage is one server-to-client frame.
type streamMessage struct {
	T      string         `json:"t"`
	C      *[2]uint       `json:"c,omitempty"`
	Result *routeResponse `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// conn serializes writes to a websocket. After the first failed write every
// Send is a no-op returning that error.
type conn struct {
	ws     *websocket.Conn
	mu     sync.Mutex
	err    error
	frames int
}

func (c *conn) Send(msg interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if c.err = c.ws.WriteMessage(websocket.TextMessage, data); c.err == nil {
		c.frames++
	}

	return c.err
}

// failed reports whether a write has already failed.
func (c *conn) failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err != nil
}

// expansions returns the planner hook that sends one frame per every
// expanded cells. It goes quiet once the connection has failed.
func expansions(out *conn, every int) func(grid.Cell) {
	var n int

	return func(cell grid.Cell) {
		n++
		if n%every != 0 || out.failed() {
			return
		}
		_ = out.Send(streamMessage{T: msgExpand, C: &[2]uint{cell.X, cell.Y}})
	}
}

// stream upgrades to a websocket and answers each routeRequest frame with
// the expanded cells followed by the result. The every query parameter
// thins the expansion frames to one in n.
func (s *Server) stream(c *gin.Context) {
	sp, ok := s.lookup(c)
	if !ok {
		return
	}
	every := 1
	if q := c.Query("every"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter every must be a positive integer"})
			return
		}
		every = n
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Printf("ERROR: websocket upgrade failed: %v", err)
		return
	}
	defer ws.Close()
	out := &conn{ws: ws}
	s.log.Printf("Stream opened on %s", sp.id)

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Printf("ERROR: stream read: %v", err)
			}
			s.log.Printf("Stream closed on %s", sp.id)
			return
		}

		var req routeRequest
		if err = json.Unmarshal(raw, &req); err != nil || req.Start == nil || req.Goal == nil {
			if err = out.Send(streamMessage{T: msgError, Error: "expected {\"start\":{...},\"goal\":{...}}"}); err != nil {
				return
			}
			continue
		}

		resp, err := s.plan(sp, req, expansions(out, every))
		if err != nil {
			err = out.Send(streamMessage{T: msgError, Error: err.Error()})
		} else {
			err = out.Send(streamMessage{T: msgResult, Result: &resp})
		}
		if err != nil {
			s.log.Printf("ERROR: stream write: %v", err)
			return
		}
	}
}
