// Package gpio adapts direct pin callbacks into a timed sspi.PinDriver,
// deriving the half clock period from an SCK rate in Hz.
package gpio

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/odolgy/sspi"
)

// DefaultRate is the SCK rate used when the configured rate is zero.
const DefaultRate = 100_000 // Hz

// Pins drives a software SPI bus through three pin callbacks, sleeping
// between clock edges to hold the configured SCK rate.
type Pins struct {
	sck  func(high bool)
	mosi func(high bool)
	miso func() bool

	half time.Duration
	clk  clock.Clock
}

// New wires the pin callbacks into a driver clocking SCK at rateHz.
// A rate of zero selects DefaultRate.
//
// The effective rate is an upper bound: callback latency and scheduler
// jitter stretch each half period, they never shrink it.
func New(sck, mosi func(high bool), miso func() bool, rateHz uint32) *Pins {
	if rateHz == 0 {
		rateHz = DefaultRate
	}
	// Two edges per bit, so the half period is 1e9/(2*rate) ns.
	half := time.Duration(500_000_000/rateHz) * time.Nanosecond

	return &Pins{
		sck:  sck,
		mosi: mosi,
		miso: miso,
		half: half,
		clk:  clock.New(),
	}
}

// WithClock substitutes the wall clock used for half-period sleeps.
// For tests.
func (p *Pins) WithClock(c clock.Clock) *Pins {
	p.clk = c
	return p
}

// HalfPeriod returns the configured half SCK period.
func (p *Pins) HalfPeriod() time.Duration { return p.half }

func (p *Pins) SetSCK(high bool)  { p.sck(high) }
func (p *Pins) SetMOSI(high bool) { p.mosi(high) }
func (p *Pins) GetMISO() bool     { return p.miso() }
func (p *Pins) Delay()            { p.clk.Sleep(p.half) }

var _ sspi.PinDriver = (*Pins)(nil)
