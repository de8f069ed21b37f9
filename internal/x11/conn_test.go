package x11

import (
	"context"
	"os"
	"testing"
	"time"
)

// Integration tests against a real X server. They move the real
// pointer, so they only run when a display is reachable.

func TestConnIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("DISPLAY") == "" {
		t.Skip("DISPLAY not set - no X server available")
	}

	conn, err := Open("")
	if err != nil {
		t.Skipf("Cannot connect to X display: %v", err)
	}
	defer conn.Close()

	width, height := conn.ScreenSize()
	if width <= 0 || height <= 0 {
		t.Fatalf("Bogus screen dimensions %dx%d", width, height)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("Pointer", func(t *testing.T) {
		x, y, err := conn.Pointer(ctx)
		if err != nil {
			t.Fatalf("Pointer query failed: %v", err)
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			t.Errorf("Pointer (%d,%d) outside screen %dx%d", x, y, width, height)
		}
	})

	t.Run("MotionRoundTrip", func(t *testing.T) {
		targetX, targetY := width/2, height/2
		if err := conn.FakeMotion(targetX, targetY); err != nil {
			t.Fatalf("FakeMotion failed: %v", err)
		}
		if err := conn.Sync(ctx); err != nil {
			t.Fatalf("Sync failed: %v", err)
		}

		x, y, err := conn.Pointer(ctx)
		if err != nil {
			t.Fatalf("Pointer query failed: %v", err)
		}
		// Another client may move the pointer between the warp and the
		// query; only report, don't fail.
		if x != targetX || y != targetY {
			t.Logf("pointer at (%d,%d) after warp to (%d,%d) - external interference?", x, y, targetX, targetY)
		}
	})

	t.Run("ClosedConn", func(t *testing.T) {
		c, err := Open("")
		if err != nil {
			t.Skipf("Cannot open second connection: %v", err)
		}
		if err := c.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		// Close twice is fine.
		if err := c.Close(); err != nil {
			t.Errorf("Second Close failed: %v", err)
		}
		if _, _, err := c.Pointer(ctx); err != ErrConnClosed {
			t.Errorf("Expected ErrConnClosed, got %v", err)
		}
		if err := c.FakeButton(1, true); err != ErrConnClosed {
			t.Errorf("Expected ErrConnClosed, got %v", err)
		}
	})
}

func TestOpenUnreachableDisplay(t *testing.T) {
	conn, err := Open(":63")
	if err == nil {
		conn.Close()
		t.Skip("An X server is unexpectedly listening on :63")
	}
}
