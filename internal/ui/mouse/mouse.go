package mouse

// Rect is a screen rectangle in cells. Right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap maps screen positions to regions. Regions added later take
// priority over earlier ones when they overlap.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (h *HitMap) AddRect(id string, x, y, w, height int, data any) {
	h.regions = append(h.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: height},
		Data: data,
	})
}

// Test returns the topmost region at (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Regions returns all registered regions in insertion order.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}
