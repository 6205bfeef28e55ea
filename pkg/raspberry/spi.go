package raspberry

import (
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"
)

// SPI is a spidev port driving the display. Chip select is left to
// DisplayPins so that the command/data bit can be clocked in first.
type SPI struct {
	port spi.PortCloser
	conn spi.Conn
}

var _ drivers.SPI = (*SPI)(nil)

// OpenSPI opens the named port (e.g. "/dev/spidev0.0" or "SPI0.0") in mode 0
// at khz kilohertz.
func OpenSPI(name string, khz int) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	p, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	c, err := p.Connect(physic.Frequency(khz)*physic.KiloHertz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return &SPI{port: p, conn: c}, nil
}

// Tx writes w and reads into r, either may be nil.
func (s *SPI) Tx(w, r []byte) error {
	return s.conn.Tx(w, r)
}

// Transfer writes a single byte and returns the byte read back.
func (s *SPI) Transfer(b byte) (byte, error) {
	w, r := [1]byte{b}, [1]byte{}
	err := s.conn.Tx(w[:], r[:])
	return r[0], err
}

// Close releases the port.
func (s *SPI) Close() error {
	return s.port.Close()
}
