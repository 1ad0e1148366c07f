package game

// Input is one directional press or release as seen by the engine.
type Input struct {
	Direction Direction `json:"d"`
	Released  bool      `json:"r,omitempty"`
	Beat      float64   `json:"b"`
}
