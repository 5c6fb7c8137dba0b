package sspi

// BitOrder selects which end of a word goes on the wire first.
type BitOrder uint8

const (
	// MSBFirst transmits the most significant bit of each word first.
	MSBFirst BitOrder = iota
	// LSBFirst transmits the least significant bit of each word first.
	LSBFirst
)

// Mode is a standard SPI mode number (0-3) combining clock polarity
// and clock phase:
//
//	Mode 0: CPOL=0, CPHA=0 (clock idle low, sample on rising edge)
//	Mode 1: CPOL=0, CPHA=1 (clock idle low, sample on falling edge)
//	Mode 2: CPOL=1, CPHA=0 (clock idle high, sample on falling edge)
//	Mode 3: CPOL=1, CPHA=1 (clock idle high, sample on rising edge)
type Mode uint8

const (
	Mode0 Mode = iota
	Mode1
	Mode2
	Mode3
)

// Polarity reports the clock idle level for the mode (CPOL).
func (m Mode) Polarity() bool { return m&2 != 0 }

// Phase reports whether data is sampled on the trailing edge (CPHA).
func (m Mode) Phase() bool { return m&1 != 0 }

// Bus is a software SPI master on three caller-supplied lines.
//
// The configuration fields must not change while a transfer is in
// progress, and two transfers on the same pins must not interleave;
// serializing access is the caller's responsibility.
//
// The zero value of the configuration fields selects mode 0, MSB-first,
// 8-bit words; only Pins has to be set before use.
type Bus struct {
	// Pins provides the clock, data and timing operations.
	Pins PinDriver

	// CPOL is the clock idle level: false = idle low, true = idle high.
	//
	// When CPOL is false the leading edge of SCK is a low to high
	// transition and the trailing edge is high to low: __/^\__.
	// When CPOL is true the edges are inverted: ^^\_/^^.
	CPOL bool

	// CPHA is the clock phase: when false the data is sampled on the
	// leading edge and changed on the trailing edge; when true the data
	// is changed on the leading edge and sampled on the trailing edge.
	CPHA bool

	// Order is the bit ordering within each word.
	Order BitOrder

	// WordSize is the number of bits per transferred word, 1-8.
	// Values outside [1,7] select the default size of 8 bits. When the
	// word is shorter than 8 bits the lowest bits of each byte are
	// used: with WordSize 5, send 0x1F to shift out all ones.
	// Negative values are a configuration error; they are treated as 8
	// rather than detected.
	WordSize int
}

// SetMode sets CPOL and CPHA from a standard mode number.
func (b *Bus) SetMode(m Mode) {
	b.CPOL = m.Polarity()
	b.CPHA = m.Phase()
}

// wordSize returns the effective word size with out-of-range values
// normalized to the 8-bit default.
func (b *Bus) wordSize() int {
	if b.WordSize >= 1 && b.WordSize < 8 {
		return b.WordSize
	}
	return 8
}

// Reset drives SCK and MOSI to their default levels: SCK to the idle
// level selected by CPOL and MOSI low. Use it after pin initialization
// to make the SCK level match the CPOL setting, or after a write to
// return MOSI to a known state. It performs no sampling and has no
// effect on transfer correctness.
func (b *Bus) Reset() {
	b.Pins.SetSCK(b.CPOL)
	b.Pins.SetMOSI(false)
}
