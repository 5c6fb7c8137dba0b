// Package serialpins drives software SPI pins on a GPIO bridge attached
// over a serial port, in the manner of Bus Pirate style adapters. The
// bridge executes one single-byte command per pin operation:
//
//	C / c   drive SCK high / low
//	D / d   drive MOSI high / low
//	R       read MISO; the bridge answers '1' or '0'
//	W       wait one half SCK period; the bridge answers '.' when done
//
// The half period, and therefore the SCK rate, is configured on the
// bridge itself; the W round trip keeps the host in lockstep with it.
package serialpins

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tarm/serial"

	"github.com/odolgy/sspi"
)

// Bridge protocol bytes.
const (
	cmdSCKHigh  = 'C'
	cmdSCKLow   = 'c'
	cmdMOSIHigh = 'D'
	cmdMOSILow  = 'd'
	cmdReadMISO = 'R'
	cmdWait     = 'W'

	replyHigh = '1'
	replyLow  = '0'
	replyAck  = '.'
)

// Pins is an sspi.PinDriver backed by a remote bridge.
//
// sspi.PinDriver has no error returns, so port failures are sticky:
// after the first error all pin operations become no-ops (GetMISO reads
// low) and the error is reported by Err. Check Err after every
// transfer.
type Pins struct {
	port io.ReadWriteCloser
	err  error
	buf  [1]byte
}

// Open connects to the bridge on the named serial device.
func Open(device string, baud int) (*Pins, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "serialpins: open bridge on %s", device)
	}
	return &Pins{port: port}, nil
}

// NewPins wraps an already open port. Useful for bridges reached over
// transports other than a local serial device, and for tests.
func NewPins(port io.ReadWriteCloser) *Pins {
	return &Pins{port: port}
}

func (p *Pins) command(c byte) {
	if p.err != nil {
		return
	}
	p.buf[0] = c
	if _, err := p.port.Write(p.buf[:]); err != nil {
		p.err = errors.Wrapf(err, "serialpins: send command %q", c)
	}
}

func (p *Pins) reply(cmd byte) byte {
	if p.err != nil {
		return 0
	}
	if _, err := io.ReadFull(p.port, p.buf[:]); err != nil {
		p.err = errors.Wrapf(err, "serialpins: reply to command %q", cmd)
		return 0
	}
	return p.buf[0]
}

func (p *Pins) SetSCK(high bool) {
	if high {
		p.command(cmdSCKHigh)
	} else {
		p.command(cmdSCKLow)
	}
}

func (p *Pins) SetMOSI(high bool) {
	if high {
		p.command(cmdMOSIHigh)
	} else {
		p.command(cmdMOSILow)
	}
}

func (p *Pins) GetMISO() bool {
	p.command(cmdReadMISO)
	r := p.reply(cmdReadMISO)
	if r != replyHigh && r != replyLow && p.err == nil {
		p.err = errors.Errorf("serialpins: bad MISO reply %q", r)
	}
	return r == replyHigh
}

func (p *Pins) Delay() {
	p.command(cmdWait)
	if r := p.reply(cmdWait); r != replyAck && p.err == nil {
		p.err = errors.Errorf("serialpins: bad wait ack %q", r)
	}
}

// Err returns the first port or protocol error encountered.
func (p *Pins) Err() error { return p.err }

// Close closes the underlying port.
func (p *Pins) Close() error { return p.port.Close() }

var _ sspi.PinDriver = (*Pins)(nil)
