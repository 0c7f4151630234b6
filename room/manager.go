package room

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"
)

var ErrEmptyCode = errors.New("room code is empty")

// RoomInfo is returned by the API for the room list.
type RoomInfo struct {
	Code    string `json:"code"`
	Clients int    `json:"clients"`
}

// Manager holds multiple rooms by code. Rooms are created on first join or via CreateRoom,
// and removed when the last client leaves.
type Manager struct {
	mu    sync.RWMutex
	opts  Options
	rooms map[string]*Room
}

func NewManager(opts Options) *Manager {
	return &Manager{
		opts:  opts,
		rooms: make(map[string]*Room),
	}
}

// GetOrCreateRoom returns the room for the given code, creating it if needed.
func (m *Manager) GetOrCreateRoom(code string) (*Room, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r, nil
	}
	return m.startRoom(code)
}

// startRoom must be called with m.mu held.
func (m *Manager) startRoom(code string) (*Room, error) {
	r, err := New(m.opts)
	if err != nil {
		return nil, err
	}
	r.Code = code
	r.OnEmpty = func(c string) {
		// OnEmpty runs on the room goroutine; removal must not block it.
		go m.removeRoom(c, r)
	}
	m.rooms[code] = r
	go r.Run()
	return r, nil
}

func (m *Manager) removeRoom(code string, r *Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.rooms[code]; ok && cur == r && r.NumClients() == 0 {
		r.Stop()
		delete(m.rooms, code)
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateRoom generates a unique 6-char code, creates the room, and returns the code.
func (m *Manager) CreateRoom() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		if _, err := m.startRoom(code); err != nil {
			return "", err
		}
		return code, nil
	}
}

// ListRooms returns all active rooms with code and client count.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Clients: r.NumClients()})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
