// Package x11 wraps the X protocol pieces xmouse needs: a display
// connection, the root pointer query, screen dimensions and XTEST
// synthetic input injection.
package x11

import (
	"context"
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"

	"github.com/xmremote/xmouse/internal/logger"
)

// Conn is a single-owner X display connection. It is not safe for
// concurrent use; callers serialize access themselves.
type Conn struct {
	conn   *xgb.Conn
	root   xproto.Window
	width  int
	height int

	mu     sync.Mutex
	closed bool
}

// Open connects to the X server at the given display address, e.g. ":0".
// An empty display falls back to the DISPLAY environment variable.
// The XTEST extension is initialized eagerly so injection failures
// surface here rather than on the first fake event.
func Open(display string) (*Conn, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X display %q: %w", display, err)
	}

	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("XTEST extension unavailable: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)

	c := &Conn{
		conn:   conn,
		root:   screen.Root,
		width:  int(screen.WidthInPixels),
		height: int(screen.HeightInPixels),
	}

	logger.Debugf("connected to X display %q (screen %dx%d)", display, c.width, c.height)
	return c, nil
}

// ScreenSize returns the root screen dimensions in pixels.
func (c *Conn) ScreenSize() (width, height int) {
	return c.width, c.height
}

// Pointer queries the live root-relative pointer position. The reply
// wait is bounded by ctx.
func (c *Conn) Pointer(ctx context.Context) (x, y int, err error) {
	if err := c.ensureOpen(); err != nil {
		return 0, 0, err
	}

	cookie := xproto.QueryPointer(c.conn, c.root)

	type result struct {
		reply *xproto.QueryPointerReply
		err   error
	}
	done := make(chan result, 1)
	go func() {
		reply, err := cookie.Reply()
		done <- result{reply, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return 0, 0, fmt.Errorf("query pointer: %w", res.err)
		}
		return int(res.reply.RootX), int(res.reply.RootY), nil
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	}
}

// FakeButton injects a synthetic ButtonPress or ButtonRelease for the
// given detail ID.
func (c *Conn) FakeButton(detail uint8, press bool) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	kind := byte(xproto.ButtonRelease)
	if press {
		kind = byte(xproto.ButtonPress)
	}

	cookie := xtest.FakeInputChecked(c.conn, kind, detail, xproto.TimeCurrentTime, c.root, 0, 0, 0)
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("fake button event (detail %d): %w", detail, err)
	}
	return nil
}

// FakeMotion injects a synthetic MotionNotify warping the pointer to
// absolute root coordinates. Detail 0 selects absolute positioning in
// the XTEST request.
func (c *Conn) FakeMotion(x, y int) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	cookie := xtest.FakeInputChecked(c.conn, byte(xproto.MotionNotify), 0, xproto.TimeCurrentTime, c.root, int16(x), int16(y), 0)
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("fake motion event (%d,%d): %w", x, y, err)
	}
	return nil
}

// Sync forces all queued requests out and waits until the server has
// processed them, via a GetInputFocus round trip (the XSync idiom).
// The wait is bounded by ctx.
func (c *Conn) Sync(ctx context.Context) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	cookie := xproto.GetInputFocus(c.conn)

	done := make(chan error, 1)
	go func() {
		_, err := cookie.Reply()
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts down the X connection. Safe to call more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.conn.Close()
	return nil
}

func (c *Conn) ensureOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConnClosed
	}
	return nil
}
