package protocol

// messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional name
}

// Tear is a pointer click in viewport coordinates.
type Tear struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Resize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}
