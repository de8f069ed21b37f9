// Package mouse drives the pointer of an X display: movement, button
// press/release, clicks, drags and discrete wheel scrolling. Every
// operation is a synchronous request/response cycle against the
// display; nothing is cached and no background work is performed.
package mouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xmremote/xmouse/internal/logger"
	"github.com/xmremote/xmouse/internal/x11"
)

var (
	// ErrOutOfBounds is returned when a target coordinate falls outside
	// the screen and the bounds policy is BoundsReject.
	ErrOutOfBounds = errors.New("target coordinates out of screen bounds")
)

// Point is a root-relative pointer position. Positions are live state
// of the X server; a Point is a snapshot, never a cached value.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect is an inclusive coordinate range.
type Rect struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether (x, y) lies within the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Clamp pins (x, y) into the rect.
func (r Rect) Clamp(x, y int) (int, int) {
	if x < r.MinX {
		x = r.MinX
	} else if x > r.MaxX {
		x = r.MaxX
	}
	if y < r.MinY {
		y = r.MinY
	} else if y > r.MaxY {
		y = r.MaxY
	}
	return x, y
}

// BoundsPolicy controls what absolute moves do with targets outside
// the screen.
type BoundsPolicy int

const (
	// BoundsIgnore passes coordinates through untouched; the server
	// clamps on its own. This matches the historical behavior.
	BoundsIgnore BoundsPolicy = iota
	// BoundsClamp pins targets to the screen edge before injecting.
	BoundsClamp
	// BoundsReject fails moves whose target is off screen.
	BoundsReject
)

// ParseBoundsPolicy maps a config name to a policy. Unknown names fall
// back to BoundsIgnore.
func ParseBoundsPolicy(name string) BoundsPolicy {
	switch name {
	case "clamp":
		return BoundsClamp
	case "reject":
		return BoundsReject
	default:
		return BoundsIgnore
	}
}

// Display is what the pointer session consumes from the X binding:
// a live pointer query, screen dimensions, XTEST injection and a sync
// barrier. Implemented by x11.Conn; tests substitute a recorder.
type Display interface {
	Pointer(ctx context.Context) (x, y int, err error)
	ScreenSize() (width, height int)
	FakeButton(detail uint8, press bool) error
	FakeMotion(x, y int) error
	Sync(ctx context.Context) error
	Close() error
}

// Remote is a pointer-control session against one display connection.
// It holds no state beyond its construction-time configuration; the
// pointer itself lives in the server. Not safe for concurrent use:
// the underlying display connection assumes a single owner.
type Remote struct {
	display  Display
	buttons  ButtonMap
	absolute Rect
	relative Rect
	policy   BoundsPolicy
}

// New wraps an already-open display. A nil or empty buttons table
// selects the default seven-entry table, mirroring how a malformed
// table is treated: silently replaced, not rejected.
func New(display Display, buttons ButtonMap, policy BoundsPolicy) *Remote {
	if len(buttons) == 0 {
		buttons = DefaultButtons()
	}

	width, height := display.ScreenSize()
	return &Remote{
		display: display,
		buttons: buttons,
		absolute: Rect{
			MinX: 0, MaxX: width - 1,
			MinY: 0, MaxY: height - 1,
		},
		// Advisory range for single relative steps; kept for callers
		// that want to rate-limit their own movement deltas.
		relative: Rect{
			MinX: -25, MaxX: 25,
			MinY: -25, MaxY: 25,
		},
		policy: policy,
	}
}

// Connect opens the X display at the given address and wraps it. An
// empty display falls back to the DISPLAY environment variable. An
// unreachable server is fatal here; there is no retry.
func Connect(display string, buttons ButtonMap, policy BoundsPolicy) (*Remote, error) {
	conn, err := x11.Open(display)
	if err != nil {
		return nil, err
	}
	return New(conn, buttons, policy), nil
}

// Close releases the display connection.
func (r *Remote) Close() error {
	return r.display.Close()
}

// Buttons returns the session's button table.
func (r *Remote) Buttons() ButtonMap {
	return r.buttons
}

// Bounds returns the absolute screen coordinate range.
func (r *Remote) Bounds() Rect {
	return r.absolute
}

// RelativeBounds returns the advisory single-step range for relative
// moves. No operation enforces it.
func (r *Remote) RelativeBounds() Rect {
	return r.relative
}

// Location queries the live pointer position.
func (r *Remote) Location(ctx context.Context) (Point, error) {
	x, y, err := r.display.Pointer(ctx)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// Press injects a button press for the resolved button. The real
// button state of the host changes; pair every Press with a Release.
func (r *Remote) Press(ctx context.Context, b Button, options ...Option) error {
	o := resolveOpts(options)
	return r.press(ctx, r.buttons.Resolve(b), o.sync)
}

// Release injects a button release for the resolved button.
func (r *Remote) Release(ctx context.Context, b Button, options ...Option) error {
	o := resolveOpts(options)
	return r.release(ctx, r.buttons.Resolve(b), o.sync)
}

// Click presses and releases the resolved button, o.times times in
// strict sequence. WithHoldDelay controls the pause between press and
// release of each repetition; the pause is cancellable through ctx.
func (r *Remote) Click(ctx context.Context, b Button, options ...Option) error {
	o := resolveOpts(options)
	detail := r.buttons.Resolve(b)

	for i := 0; i < o.times; i++ {
		if err := r.press(ctx, detail, o.sync); err != nil {
			return err
		}
		if err := sleep(ctx, o.holdDelay); err != nil {
			return err
		}
		if err := r.release(ctx, detail, o.sync); err != nil {
			return err
		}
	}
	return nil
}

// MoveTo warps the pointer to absolute root coordinates and returns
// the freshly queried position. The result can differ from the target:
// the server clamps off-screen warps, and another client or the user
// may move the pointer concurrently. That race is observable and not
// an error.
func (r *Remote) MoveTo(ctx context.Context, x, y int, options ...Option) (Point, error) {
	o := resolveOpts(options)
	return r.moveTo(ctx, x, y, o.sync)
}

// MoveBy moves the pointer by an offset from its current position.
// The query and the warp are two separate round trips; concurrent
// external movement between them produces drift.
func (r *Remote) MoveBy(ctx context.Context, dx, dy int, options ...Option) (Point, error) {
	o := resolveOpts(options)

	loc, err := r.Location(ctx)
	if err != nil {
		return Point{}, err
	}
	return r.moveTo(ctx, loc.X+dx, loc.Y+dy, o.sync)
}

// DragTo holds the resolved button while warping to absolute
// coordinates: press, optional pause, move, optional pause, release.
// The release always uses the same resolved detail as the press.
func (r *Remote) DragTo(ctx context.Context, x, y int, b Button, options ...Option) (Point, error) {
	o := resolveOpts(options)
	return r.drag(ctx, b, o, func() (Point, error) {
		return r.moveTo(ctx, x, y, o.sync)
	})
}

// DragBy holds the resolved button while moving by an offset from the
// current position.
func (r *Remote) DragBy(ctx context.Context, dx, dy int, b Button, options ...Option) (Point, error) {
	o := resolveOpts(options)
	return r.drag(ctx, b, o, func() (Point, error) {
		loc, err := r.Location(ctx)
		if err != nil {
			return Point{}, err
		}
		return r.moveTo(ctx, loc.X+dx, loc.Y+dy, o.sync)
	})
}

// Scroll turns axis deltas into discrete wheel clicks: positive dy
// scrolls down, negative dy up; positive dx scrolls left, negative dx
// right. The magnitude is the click count and a zero axis does
// nothing.
func (r *Remote) Scroll(ctx context.Context, dx, dy int, options ...Option) error {
	o := resolveOpts(options)

	if dy != 0 {
		name := BtnScrollUp
		if dy > 0 {
			name = BtnScrollDown
		}
		if err := r.wheel(ctx, name, abs(dy), o); err != nil {
			return err
		}
	}

	if dx != 0 {
		name := BtnScrollRight
		if dx > 0 {
			name = BtnScrollLeft
		}
		if err := r.wheel(ctx, name, abs(dx), o); err != nil {
			return err
		}
	}
	return nil
}

func (r *Remote) drag(ctx context.Context, b Button, o opts, move func() (Point, error)) (Point, error) {
	detail := r.buttons.Resolve(b)

	if err := r.press(ctx, detail, o.sync); err != nil {
		return Point{}, err
	}
	if err := sleep(ctx, o.delayBefore); err != nil {
		return Point{}, err
	}

	loc, err := move()
	if err != nil {
		return Point{}, err
	}

	if err := sleep(ctx, o.delayAfter); err != nil {
		return Point{}, err
	}
	if err := r.release(ctx, detail, o.sync); err != nil {
		return Point{}, err
	}
	return loc, nil
}

// wheel emits discrete clicks on a scroll button. A custom table that
// lacks a scroll name falls back to the canonical wheel ID for that
// direction, not to button 1.
func (r *Remote) wheel(ctx context.Context, name string, times int, o opts) error {
	detail, ok := r.buttons[name]
	if !ok {
		detail = DefaultButtons()[name]
	}

	clickOpts := []Option{WithTimes(times), WithHoldDelay(o.holdDelay)}
	if !o.sync {
		clickOpts = append(clickOpts, WithNoSync())
	}
	return r.Click(ctx, ButtonID(detail), clickOpts...)
}

func (r *Remote) moveTo(ctx context.Context, x, y int, sync bool) (Point, error) {
	switch r.policy {
	case BoundsClamp:
		x, y = r.absolute.Clamp(x, y)
	case BoundsReject:
		if !r.absolute.Contains(x, y) {
			return Point{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
		}
	}

	logger.Debugf("move pointer to (%d, %d)", x, y)
	if err := r.display.FakeMotion(x, y); err != nil {
		return Point{}, err
	}
	if err := r.syncIf(ctx, sync); err != nil {
		return Point{}, err
	}
	return r.Location(ctx)
}

func (r *Remote) press(ctx context.Context, detail uint8, sync bool) error {
	logger.Debugf("press button %d", detail)
	if err := r.display.FakeButton(detail, true); err != nil {
		return err
	}
	return r.syncIf(ctx, sync)
}

func (r *Remote) release(ctx context.Context, detail uint8, sync bool) error {
	logger.Debugf("release button %d", detail)
	if err := r.display.FakeButton(detail, false); err != nil {
		return err
	}
	return r.syncIf(ctx, sync)
}

func (r *Remote) syncIf(ctx context.Context, sync bool) error {
	if !sync {
		return nil
	}
	return r.display.Sync(ctx)
}

// sleep blocks for d unless ctx is cancelled first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
