package room

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
}

// Tear: pointer click, handled before the next frame
type Tear struct {
	ClientID string
	X, Y     float64
	Reply    chan<- TearResult // optional
}

type TearResult struct {
	Index int
	Torn  bool
}

// Resize: viewport change, recenters the cloth
type Resize struct {
	ClientID string
	W, H     float64
}

// Leave: issued on disconnect
type Leave struct {
	ClientID string
}
