package room

import (
	"fmt"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"clothsim/cloth"
	"clothsim/protocol"
)

// Options configures the cloth a room simulates and its initial viewport.
type Options struct {
	Cloth  cloth.Params
	Width  float64
	Height float64
}

func DefaultOptions() Options {
	return Options{
		Cloth:  cloth.DefaultParams(),
		Width:  cloth.ViewWidth,
		Height: cloth.ViewHeight,
	}
}

// Room owns one cloth. Run is the only goroutine that touches it; frames and
// inbox commands are serialized through the same select loop.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	cloth          *cloth.Cloth
	clients        map[string]Conn
	numClients     atomic.Int32
	nextID         int
	quit           chan struct{}

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when last client leaves
}

func New(opts Options) (*Room, error) {
	c, err := cloth.New(opts.Cloth)
	if err != nil {
		return nil, fmt.Errorf("new room: %w", err)
	}
	c.Resize(opts.Width, opts.Height)

	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		cloth:          c,
		clients:        make(map[string]Conn),
		nextID:         1,
		quit:           make(chan struct{}),
	}, nil
}

func (r *Room) Stop() {
	close(r.quit)
}

// Post delivers a command to the room, giving up once the room has stopped.
// A command posted while Stop races may still be dropped; callers waiting on
// a reply should also select on Done.
func (r *Room) Post(cmd any) bool {
	select {
	case <-r.quit:
		return false
	default:
	}
	select {
	case r.Inbox <- cmd:
		return true
	case <-r.quit:
		return false
	}
}

// Done is closed when the room stops.
func (r *Room) Done() <-chan struct{} {
	return r.quit
}

// NumClients returns the current number of connected clients.
func (r *Room) NumClients() int {
	return int(r.numClients.Load())
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.cloth.Step()
			if r.cloth.Frame%r.broadcastEvery == 0 {
				r.broadcastState()
			}
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		clientID := fmt.Sprintf("c%d", r.nextID)
		r.nextID++
		r.clients[clientID] = c.Conn
		r.numClients.Store(int32(len(r.clients)))
		c.Reply <- JoinResult{ClientID: clientID}
		r.sendWelcome(clientID, c.Conn)
		r.sendStateTo(c.Conn)
	case Tear:
		idx, torn := -1, false
		if _, ok := r.clients[c.ClientID]; ok {
			idx, torn = r.cloth.Tear(r2.Vec{X: c.X, Y: c.Y})
		}
		if c.Reply != nil {
			c.Reply <- TearResult{Index: idx, Torn: torn}
		}
	case Resize:
		if _, ok := r.clients[c.ClientID]; !ok || c.W <= 0 || c.H <= 0 {
			return
		}
		r.cloth.Resize(c.W, c.H)
	case Leave:
		r.handleLeave(c.ClientID)
	}
}

func (r *Room) handleLeave(clientID string) {
	if c, ok := r.clients[clientID]; ok {
		_ = c.Close()
		delete(r.clients, clientID)
		r.numClients.Store(int32(len(r.clients)))
	}
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removeClient(clientID string) {
	if c, ok := r.clients[clientID]; ok {
		_ = c.Close()
	}
	delete(r.clients, clientID)
	r.numClients.Store(int32(len(r.clients)))
}

func (r *Room) sendWelcome(clientID string, c Conn) {
	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		ClientID: clientID,
		TickHz:   r.tickHz,
		Rows:     r.cloth.Params.Rows,
		Cols:     r.cloth.Params.Cols,
	})
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) broadcastState() {
	if len(r.clients) == 0 {
		return
	}
	snapshot := r.buildSnapshot()
	b, err := protocol.Encode(protocol.MsgState, snapshot)
	if err != nil {
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
	if len(failed) > 0 && len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) sendStateTo(c Conn) {
	snapshot := r.buildSnapshot()
	b, err := protocol.Encode(protocol.MsgState, snapshot)
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	snapshot := protocol.State{
		Frame:       r.cloth.Frame,
		Particles:   make([]protocol.ParticleSnapshot, 0, len(r.cloth.Particles)),
		Constraints: make([]protocol.ConstraintSnapshot, 0, len(r.cloth.Constraints)),
	}
	for _, p := range r.cloth.Particles {
		snapshot.Particles = append(snapshot.Particles, protocol.ParticleSnapshot{
			X:      p.Position.X,
			Y:      p.Position.Y,
			Pinned: p.Pinned,
		})
	}
	for _, c := range r.cloth.Constraints {
		snapshot.Constraints = append(snapshot.Constraints, protocol.ConstraintSnapshot{
			A:      c.A,
			B:      c.B,
			Active: c.Active,
		})
	}
	return snapshot
}
