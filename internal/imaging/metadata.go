package imaging

import (
	"encoding/json"
	"io"
)

// AnimationMeta mirrors one named animation entry of the metadata
// descriptor.
type AnimationMeta struct {
	Frames         []int `json:"frames"`
	Loop           bool  `json:"loop"`
	FrameDurations []int `json:"frameDurations"`
}

// Metadata is the descriptor written alongside a sprite's sheet (and,
// when requested, its per-frame PNGs and animated GIF).
type Metadata struct {
	Sprite      string                   `json:"sprite"`
	FrameWidth  int                      `json:"frameWidth"`
	FrameHeight int                      `json:"frameHeight"`
	TotalFrames int                      `json:"totalFrames"`
	Scale       int                      `json:"scale"`
	Layout      string                   `json:"layout"`
	Animations  map[string]AnimationMeta `json:"animations"`
}

// Encode writes m as indented JSON, matching the `<name>_meta.json`
// sidecar file the original sprite renderer produces.
func (m Metadata) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
