// Software SPI (bit-banged) master.
// Drives an SPI bus through three GPIO-like lines supplied by the caller,
// with no hardware SPI peripheral involved.
package sspi

// PinDriver is the abstract pin interface the bus engine uses.
// Caller-supplied implementations handle actual line control.
//
// All four operations are synchronous: a call must take effect on the
// physical line before it returns. Delay fully determines the SCK
// frequency (one call per half clock period). Implementations are not
// expected to be safe for concurrent use; a bus must be driven by one
// caller at a time.
type PinDriver interface {
	// SetSCK drives the clock line high (true) or low (false).
	SetSCK(high bool)

	// SetMOSI drives the data-out line high (true) or low (false).
	SetMOSI(high bool)

	// GetMISO reads the current state of the data-in line.
	GetMISO() bool

	// Delay blocks for one half SCK period.
	Delay()
}

// PinFuncs adapts four plain functions into a PinDriver. It is the
// function-slot equivalent of implementing the interface, for callers
// that wire pins with closures instead of a named type.
//
// All four slots must be non-nil before the first transfer.
type PinFuncs struct {
	SetSCKFn  func(high bool)
	SetMOSIFn func(high bool)
	GetMISOFn func() bool
	DelayFn   func()
}

func (p *PinFuncs) SetSCK(high bool)  { p.SetSCKFn(high) }
func (p *PinFuncs) SetMOSI(high bool) { p.SetMOSIFn(high) }
func (p *PinFuncs) GetMISO() bool     { return p.GetMISOFn() }
func (p *PinFuncs) Delay()            { p.DelayFn() }

var _ PinDriver = (*PinFuncs)(nil)
