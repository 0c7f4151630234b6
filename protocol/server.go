package protocol

type Welcome struct {
	ClientID string `json:"clientId"`
	TickHz   int    `json:"tickHz"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
}

// State is a render view of the cloth. Constraint endpoints index into
// Particles.
type State struct {
	Frame       int                  `json:"frame"`
	Particles   []ParticleSnapshot   `json:"particles"`
	Constraints []ConstraintSnapshot `json:"constraints"`
}

type ParticleSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Pinned bool    `json:"pinned,omitempty"`
}

type ConstraintSnapshot struct {
	A      int  `json:"a"`
	B      int  `json:"b"`
	Active bool `json:"active"`
}
