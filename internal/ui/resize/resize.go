// Package resize implements drag-to-resize for board panels: a drag on the
// handle after a panel previews the new width live and commits it as a
// percentage of the container on release.
package resize

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/sadopc/paneboard/internal/ui/pointer"
)

var (
	ErrMissingTargetElement = errors.New("could not start resize: no target element found")
	ErrMissingContainer     = errors.New("cannot resize: no parent container")
	ErrMissingPersistTarget = errors.New("could not save width: no item found")
)

// Element is an on-screen box whose width can be previewed during a drag.
type Element interface {
	// OffsetWidth is the rendered width in cells.
	OffsetWidth() int
	// SetStyleWidth overrides the rendered width with a CSS-style length.
	SetStyleWidth(w string)
}

// Container is the percentage basis for every width computation.
type Container interface {
	ClientWidth() int
}

// Target receives the committed width when a drag ends.
type Target interface {
	SetWidth(w string)
}

// EventTarget is where the drag listeners live while a session is active.
type EventTarget interface {
	AddListener(kind pointer.Kind, fn pointer.Listener) (remove func())
}

// Handle is a drag handle bound to the element it resizes.
type Handle struct {
	ID      string
	Element Element
}

// StartEvent is the pointer press that begins a drag.
type StartEvent struct {
	X      int
	Handle *Handle
}

// ContainerRef is a late-bound reference to the container. It may be empty
// until the view has a size, and may be detached at any time.
type ContainerRef struct {
	c Container
}

// Attach points the reference at c.
func (r *ContainerRef) Attach(c Container) { r.c = c }

// Detach clears the reference.
func (r *ContainerRef) Detach() { r.c = nil }

// Get returns the container, or nil when none is attached.
func (r *ContainerRef) Get() Container {
	if r == nil {
		return nil
	}
	return r.c
}

type session struct {
	handle     *Handle
	target     Target
	startX     int
	startWidth int
	element    Element
	release    func()
}

// Controller tracks at most one drag session. A nil session means idle.
type Controller struct {
	container *ContainerRef
	events    EventTarget
	logger    *slog.Logger

	session *session
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for resize diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller that measures against ref and subscribes to events.
func New(ref *ContainerRef, events EventTarget, opts ...Option) *Controller {
	c := &Controller{
		container: ref,
		events:    events,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartResizing begins a drag on ev.Handle. The element to resize comes from
// the handle itself. On error nothing is registered or mutated.
//
// A call while a drag is already active supersedes it: the old listeners are
// released and its pending width is dropped.
func (c *Controller) StartResizing(ev StartEvent, target Target) error {
	if ev.Handle == nil || ev.Handle.Element == nil {
		c.logger.Error("start resize", "err", ErrMissingTargetElement)
		return ErrMissingTargetElement
	}

	if c.session != nil {
		c.logger.Warn("superseding active resize", "handle", c.session.handle.ID)
		c.endSession()
	}

	el := ev.Handle.Element
	s := &session{
		handle:     ev.Handle,
		target:     target,
		startX:     ev.X,
		startWidth: el.OffsetWidth(),
		element:    el,
	}

	removeUp := c.events.AddListener(pointer.Up, c.handleMouseUp)
	removeMove := c.events.AddListener(pointer.Move, c.handleMouseMove)
	s.release = func() {
		removeUp()
		removeMove()
	}
	c.session = s

	c.preview(ev.X)
	return nil
}

// Close drops any active session without committing it and releases its
// listeners. Owners call it when the view that hosts the controller goes away.
func (c *Controller) Close() {
	c.endSession()
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// ActiveHandle returns the handle being dragged, or nil.
func (c *Controller) ActiveHandle() *Handle {
	if c.session == nil {
		return nil
	}
	return c.session.handle
}

func (c *Controller) handleMouseMove(ev pointer.Event) {
	if c.session == nil || c.session.element == nil {
		return
	}
	c.preview(ev.X)
}

func (c *Controller) preview(x int) {
	offset := x - c.session.startX
	w, err := c.calcNewPanelWidth(offset)
	if err != nil {
		c.logger.Error("preview width", "err", err, "handle", c.session.handle.ID, "offset", offset)
		return
	}
	c.session.element.SetStyleWidth(w)
}

func (c *Controller) handleMouseUp(ev pointer.Event) {
	defer c.endSession()

	if c.session == nil || c.session.target == nil {
		c.logger.Error("commit width", "err", ErrMissingPersistTarget)
		return
	}

	offset := ev.X - c.session.startX
	w, err := c.calcNewPanelWidth(offset)
	if err != nil {
		c.logger.Error("commit width", "err", err, "handle", c.session.handle.ID, "offset", offset)
		return
	}
	c.session.target.SetWidth(w)
}

func (c *Controller) endSession() {
	if c.session == nil {
		return
	}
	c.session.release()
	c.session = nil
}

// calcNewPanelWidth converts a pointer offset from the drag origin into a
// percentage of the container width. The result is not clamped.
func (c *Controller) calcNewPanelWidth(offsetX int) (string, error) {
	container := c.container.Get()
	if container == nil {
		return "", ErrMissingContainer
	}
	cw := container.ClientWidth()
	if cw <= 0 {
		return "", ErrMissingContainer
	}

	var startWidth int
	if c.session != nil {
		startWidth = c.session.startWidth
	}
	pct := float64(startWidth+offsetX) * 100 / float64(cw)
	return FormatPercent(pct), nil
}

// FormatPercent renders pct with the shortest exact decimal form, e.g. "42.7%".
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}
