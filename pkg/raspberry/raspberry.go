// Package raspberry connects the tachometer to the board: the sensor and LED
// GPIO lines, the display's SPI port and control pins, and the monotonic clock
// the line events are stamped with. It also holds software stand-ins for the
// sensor, the LED and the display used when no hardware is attached.
package raspberry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam is returned for an unknown edge or bias setting.
	ErrInvalidParam = fmt.Errorf("invalid parameters")
	// ErrUnsupported is returned by the hardware constructors on platforms
	// without GPIO character devices.
	ErrUnsupported = errors.New("gpio is not supported on this platform")
)

// Edge values of the sensor line configuration.
const (
	EdgeRising  = "rising"
	EdgeFalling = "falling"
	EdgeBoth    = "both"
)

// Bias values of the sensor line configuration.
const (
	BiasPullUp   = "pullup"
	BiasPullDown = "pulldown"
	BiasNone     = "none"
)
