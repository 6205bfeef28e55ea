package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"tacho/pkg/app/config"
	"tacho/pkg/capture"
	"tacho/pkg/irq"
	"tacho/pkg/lcd"
	"tacho/pkg/port"
	"tacho/pkg/pulse"
	"tacho/pkg/rpm"
	"tacho/pkg/timer"

	"github.com/womat/debug"
)

// Interrupt sources.
const (
	vecOverflow irq.Source = iota
	vecEdge
	vecPulse
)

// queueDepth is the number of raised but not yet serviced interrupts.
const queueDepth = 64

// pollInterval paces the main loop.
const pollInterval = time.Millisecond

// App is the main application struct.
// App is where the application is wired up.
type App struct {
	// config is the application configuration
	config *config.Config

	// board holds the peripherals
	board *board

	// irq is the interrupt context, every handler below runs on it
	irq *irq.Controller
	// counter is the free running period counter
	counter *timer.Counter
	// countdown times the LED pulse
	countdown *timer.Countdown
	// mailbox passes measurements from the edge handler to the main loop
	mailbox *capture.Mailbox
	capture *capture.Capture
	pulse   *pulse.Controller

	// estimator and display belong to the main loop
	estimator *rpm.Estimator
	display   *lcd.Device

	// sensor delivers the edges
	sensor io.Closer

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New checks the configuration and initializes the main app structure.
func New(c *config.Config) (*App, error) {
	if c.Simulate < 0 {
		return &App{}, fmt.Errorf("%w: simulate %d", config.ErrInvalidConfig, c.Simulate)
	}

	return &App{config: c}, nil
}

// Run starts the application: it configures the display, shows the splash,
// starts the interrupt context and the main loop and then starts watching the
// sensor.
func (app *App) Run() error {
	if err := app.init(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.irq.Run(ctx)
	}()

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.timebase(ctx)
	}()

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.loop(ctx)
	}()

	sensor, err := app.board.watch(app.handleEvent)
	if err != nil {
		debug.ErrorLog.Printf("can't watch sensor: %v", err)
		return err
	}
	app.sensor = sensor

	return nil
}

// init opens the board and wires the interrupt handlers.
func (app *App) init() error {
	if app.board == nil {
		b, err := openBoard(app.config)
		if err != nil {
			debug.ErrorLog.Printf("can't open board: %v", err)
			return err
		}
		app.board = b
	}

	app.irq = irq.New(queueDepth)
	app.counter = timer.NewCounter(app.board.now())
	app.countdown = timer.NewCountdown(pulse.Ticks, func() {
		app.irq.Raise(app.board.now(), vecPulse)
	})
	app.mailbox = capture.NewMailbox(app.irq)
	app.capture = capture.New(app.counter, app.mailbox)
	app.pulse = pulse.New(app.board.led, &pulseTimer{irq: app.irq, countdown: app.countdown})
	app.estimator = rpm.New(app.mailbox, rpm.TicksPerMinute)
	app.display = lcd.New(app.board.bus, app.board.pins)

	app.irq.Register(vecOverflow, app.handleOverflow)
	app.irq.Register(vecEdge, app.handleEdge)
	app.irq.Register(vecPulse, app.handlePulse)
	app.irq.Disable(vecPulse)

	if err := app.display.Configure(); err != nil {
		debug.ErrorLog.Printf("can't configure display: %v", err)
		return err
	}
	if err := app.display.Clear(); err != nil {
		debug.ErrorLog.Printf("can't clear display: %v", err)
		return err
	}

	return app.splash()
}

// handleEvent runs on the sensor's goroutine. The overflows up to the edge are
// raised together with the edge so that they are serviced first.
func (app *App) handleEvent(e port.Event) {
	if !app.irq.Raise(e.Timestamp, vecOverflow, vecEdge) {
		debug.TraceLog.Printf("%s edge at %v lost", e.Type, e.Timestamp)
	}
}

// timebase keeps overflows coming while the shaft stands still and retries a
// countdown expiry that could not be raised.
func (app *App) timebase(ctx context.Context) {
	t := time.NewTicker(timer.OverflowPeriod / 2)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			app.irq.Raise(app.board.now(), vecOverflow, vecPulse)
		}
	}
}

func (app *App) handleOverflow(at time.Duration) {
	for n := app.counter.Advance(at); n > 0; n-- {
		app.capture.Overflow()
	}
}

func (app *App) handleEdge(time.Duration) {
	if app.capture.Edge() {
		app.pulse.Trigger()
	}
}

func (app *App) handlePulse(time.Duration) {
	if app.countdown.Acknowledge() {
		app.pulse.Expire()
	}
}

// loop is the main loop: it consumes measurements and redraws the readout
// when the average was updated.
func (app *App) loop(ctx context.Context) {
	t := time.NewTicker(pollInterval)
	defer t.Stop()

	var dropped, lost uint32
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		if average, updated := app.estimator.Poll(); updated {
			if err := app.render(average, app.estimator.Cursor()); err != nil {
				debug.ErrorLog.Printf("can't render %d rpm: %v", average, err)
			}
		}

		if d := app.mailbox.Dropped(); d != dropped {
			debug.DebugLog.Printf("%d measurements dropped", d-dropped)
			dropped = d
		}
		if l := app.irq.Lost(); l != lost {
			debug.DebugLog.Printf("%d interrupts lost", l-lost)
			lost = l
		}
	}
}

// Close stops the sensor, the main loop and the interrupt context and releases
// the board.
func (app *App) Close() error {
	if app.sensor != nil {
		_ = app.sensor.Close()
	}

	if app.cancel != nil {
		app.cancel()
	}
	app.wg.Wait()

	if app.countdown != nil {
		app.countdown.Stop()
	}

	if app.board == nil {
		return nil
	}
	if app.board.led != nil {
		app.board.led.Set(false)
	}
	return app.board.Close()
}

// pulseTimer ties the countdown to the enable bit of its interrupt.
type pulseTimer struct {
	irq       *irq.Controller
	countdown *timer.Countdown
}

func (t *pulseTimer) Restart() {
	t.countdown.Restart()
	t.irq.Enable(vecPulse)
}

func (t *pulseTimer) Stop() {
	t.irq.Disable(vecPulse)
	t.countdown.Stop()
}
