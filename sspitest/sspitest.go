// Package sspitest provides an in-memory three-line board for exercising
// software SPI buses at the pin level. Each line is emulated as an
// open-drain pin with a pull-up resistor, records its oscillogram as a
// waveform string, and can play back a waveform driven by an external
// device. The waveform alphabet is:
//
//	_  line is low
//	^  line is high
//	/  rising transition at this sample point
//	\  falling transition at this sample point
//
// The board samples all lines once per half clock period, so waveform
// strings line up one character per Delay call.
package sspitest

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/odolgy/sspi"
)

// Pin is one emulated open-drain line with a pull-up.
//
// The resolved line level is low whenever either side (the master
// output or the external waveform) pulls it low, and high otherwise.
// An undriven pin reads high.
type Pin struct {
	name string

	real   bool // resolved line level
	out    bool // level driven from the master side
	outSet bool // master drove the pin within the current half period

	in      string // remaining externally driven waveform
	samples strings.Builder

	err error
}

func newPin(name string) *Pin {
	return &Pin{name: name, real: true, out: true}
}

// Read returns the resolved line level.
func (p *Pin) Read() bool { return p.real }

// Write drives the pin from the master side. Driving the same pin more
// than once within one half period is recorded as an error: a real bus
// would lose the intermediate level between samples.
func (p *Pin) Write(high bool) {
	if p.outSet && p.err == nil {
		p.err = errors.Errorf("pin %s driven twice within one half period", p.name)
	}
	p.outSet = true
	p.out = high
}

// Drive sets the waveform the connected external device outputs on this
// pin, one character per half period. Once the waveform is exhausted
// the device releases the line and the pull-up takes over.
func (p *Pin) Drive(waveform string) error {
	for i := 0; i < len(waveform); i++ {
		switch waveform[i] {
		case '_', '^', '/', '\\':
		default:
			return errors.Errorf("pin %s: waveform byte %q at offset %d outside _^/\\ alphabet",
				p.name, waveform[i], i)
		}
	}
	p.in = waveform
	return nil
}

// Samples returns the oscillogram recorded so far.
func (p *Pin) Samples() string { return p.samples.String() }

// Err returns the first pin usage error detected, if any.
func (p *Pin) Err() error { return p.err }

// sample resolves the line level for the current half period and
// appends it to the oscillogram.
func (p *Pin) sample() {
	in := true // released line, pull-up wins
	if len(p.in) > 0 {
		c := p.in[0]
		in = c != '_' && c != '\\'
		p.in = p.in[1:]
	}

	// Wired-AND of the two open-drain sides.
	level := p.out && in

	switch {
	case level == p.real && level:
		p.samples.WriteByte('^')
	case level == p.real:
		p.samples.WriteByte('_')
	case level:
		p.samples.WriteByte('/')
	default:
		p.samples.WriteByte('\\')
	}

	p.outSet = false
	p.real = level
}

// Board wires three emulated pins into an sspi.PinDriver. Delay
// consumes no wall-clock time; it samples every line once, advancing
// the emulated bus by one half period.
type Board struct {
	SCK  *Pin
	MOSI *Pin
	MISO *Pin
}

// NewBoard returns a board with all lines released (reading high).
func NewBoard() *Board {
	return &Board{
		SCK:  newPin("sck"),
		MOSI: newPin("mosi"),
		MISO: newPin("miso"),
	}
}

func (b *Board) SetSCK(high bool)  { b.SCK.Write(high) }
func (b *Board) SetMOSI(high bool) { b.MOSI.Write(high) }
func (b *Board) GetMISO() bool     { return b.MISO.Read() }

// Delay advances the emulated bus by one half period.
func (b *Board) Delay() { b.Settle() }

// Settle samples all lines once without a master pin write, letting a
// test observe the levels established after the last operation.
func (b *Board) Settle() {
	b.SCK.sample()
	b.MOSI.sample()
	b.MISO.sample()
}

// Err returns the first usage error detected on any pin.
func (b *Board) Err() error {
	for _, p := range []*Pin{b.SCK, b.MOSI, b.MISO} {
		if p.err != nil {
			return p.err
		}
	}
	return nil
}

var _ sspi.PinDriver = (*Board)(nil)
