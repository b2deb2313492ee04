package pointer

// Kind identifies a pointer event stream.
type Kind int

const (
	Move Kind = iota
	Up
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Event is a pointer event in terminal cell coordinates.
type Event struct {
	X int
	Y int
}

// Listener receives dispatched pointer events.
type Listener func(Event)

type entry struct {
	id int
	fn Listener
}

// Target is the process-wide pointer event target. The app feeds it from
// tea.MouseMsg; components subscribe for the duration of a gesture.
// It is not safe for concurrent use and is only touched from the update loop.
type Target struct {
	listeners map[Kind][]entry
	nextID    int
}

// NewTarget creates an empty event target.
func NewTarget() *Target {
	return &Target{listeners: make(map[Kind][]entry)}
}

// AddListener registers fn for kind and returns a func that removes it.
// Calling the returned func more than once is a no-op.
func (t *Target) AddListener(kind Kind, fn Listener) (remove func()) {
	t.nextID++
	id := t.nextID
	t.listeners[kind] = append(t.listeners[kind], entry{id: id, fn: fn})

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		t.remove(kind, id)
	}
}

func (t *Target) remove(kind Kind, id int) {
	entries := t.listeners[kind]
	for i, e := range entries {
		if e.id == id {
			t.listeners[kind] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to every listener registered for kind, in
// registration order. Listeners added or removed during dispatch take
// effect on the next call.
func (t *Target) Dispatch(kind Kind, ev Event) {
	snapshot := append([]entry(nil), t.listeners[kind]...)
	for _, e := range snapshot {
		e.fn(ev)
	}
}

// Len returns the number of listeners registered for kind.
func (t *Target) Len(kind Kind) int {
	return len(t.listeners[kind])
}
