package tween

// ClipPlayer is the clip-playback capability of a node: it starts named,
// pre-authored clips and reports their normalized playback time.
type ClipPlayer interface {
	// Play starts the named clip from the beginning. It returns false if no
	// such clip exists.
	Play(name string) bool
	// NormalizedTime reports how far the named clip has played, where 1
	// means finished. A clip cut off by another Play reports 1; a clip that
	// never started reports 0.
	NormalizedTime(name string) float64
}

// FrameClips is a ClipPlayer of fixed-length clips. The scene advances it
// every frame; only one clip plays at a time.
type FrameClips struct {
	lengths    map[string]float64
	playing    string
	elapsed    float64
	superseded map[string]bool
}

// NewFrameClips creates a player from clip names and their lengths in
// seconds. Clips with a non-positive length finish immediately.
func NewFrameClips(lengths map[string]float64) *FrameClips {
	copied := make(map[string]float64, len(lengths))
	for k, v := range lengths {
		copied[k] = v
	}
	return &FrameClips{lengths: copied, superseded: make(map[string]bool)}
}

// Play implements ClipPlayer.
func (c *FrameClips) Play(name string) bool {
	if _, ok := c.lengths[name]; !ok {
		return false
	}
	if c.playing != "" && c.playing != name {
		c.superseded[c.playing] = true
	}
	delete(c.superseded, name)
	c.playing = name
	c.elapsed = 0
	return true
}

// Playing returns the current clip name, or "" if none is playing.
func (c *FrameClips) Playing() string {
	return c.playing
}

// NormalizedTime implements ClipPlayer.
func (c *FrameClips) NormalizedTime(name string) float64 {
	if name == "" {
		return 0
	}
	if name != c.playing {
		if c.superseded[name] {
			return 1
		}
		return 0
	}
	length := c.lengths[name]
	if length <= 0 || c.elapsed >= length {
		return 1
	}
	return c.elapsed / length
}

// update advances the playing clip by dt seconds.
func (c *FrameClips) update(dt float64) {
	if c.playing == "" {
		return
	}
	c.elapsed += dt
}

// updateClips advances every FrameClips player in the subtree.
func updateClips(n *Node, dt float64) {
	if fc, ok := n.Clips.(*FrameClips); ok {
		fc.update(dt)
	}
	for _, child := range n.children {
		updateClips(child, dt)
	}
}
