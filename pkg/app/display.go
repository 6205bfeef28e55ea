package app

import (
	"tacho/pkg/lcd"

	"github.com/womat/debug"
)

// Readout layout: the average in large digits on the first three pages, the
// window cursor in small digits below it.
const (
	readoutPage   = 0
	readoutDigits = 5
	cursorPage    = 4
	cursorDigits  = 3
	splashDigit   = 5
)

// render draws the average speed and the window cursor.
func (app *App) render(average uint32, cursor int) error {
	if err := app.display.DrawNumber(readoutPage, 0, average, readoutDigits, lcd.Large); err != nil {
		return err
	}
	if err := app.display.DrawNumber(cursorPage, 0, uint32(cursor), cursorDigits, lcd.Small); err != nil {
		return err
	}

	if app.board.panel != nil {
		debug.TraceLog.Printf("%d rpm\n%s", average, app.board.panel.Render(readoutPage, cursorPage+1))
	}
	return nil
}

// splash lights the LED while a single large digit is drawn.
func (app *App) splash() error {
	app.board.led.Set(true)
	defer app.board.led.Set(false)

	return app.display.DrawDigit(readoutPage, 0, splashDigit, lcd.Large)
}
