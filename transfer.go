package sspi

// TransferBit clocks one bit over the bus: shifts out write and returns
// the bit sampled from MISO, driving one full SCK cycle through the pin
// callbacks.
//
// With CPHA=0 the outgoing bit is stable on MOSI before the leading
// edge and MISO is sampled exactly at the leading edge. With CPHA=1 the
// outgoing bit changes at the leading edge and MISO is sampled at the
// trailing edge. The leading edge direction follows CPOL.
func (b *Bus) TransferBit(write bool) bool {
	lead := !b.CPOL
	trail := b.CPOL
	p := b.Pins

	if b.CPHA {
		p.Delay()

		// Write bit on the leading edge
		p.SetSCK(lead)
		p.SetMOSI(write)
		p.Delay()

		// Read bit on the trailing edge
		p.SetSCK(trail)
		return p.GetMISO()
	}

	// Write bit
	p.SetMOSI(write)
	p.Delay()

	// Read bit on the leading edge
	p.SetSCK(lead)
	read := p.GetMISO()
	p.Delay()

	// Trailing edge
	p.SetSCK(trail)
	return read
}

// TransferWord clocks one word over the bus and returns the word read
// back. Words are carried in the low bits of a byte: with WordSize 5
// only bits 0-4 of write are shifted out and only bits 0-4 of the
// result are populated, MSB- or LSB-aligned on the wire per Order.
func (b *Bus) TransferWord(write byte) byte {
	size := b.wordSize()
	msbMask := byte(1) << (size - 1)
	maskTX, maskRX := msbMask, byte(0x01)
	if b.Order == LSBFirst {
		maskTX, maskRX = 0x01, msbMask
	}

	var read byte
	for bit := 0; bit < size; bit++ {
		if b.TransferBit(write&maskTX != 0) {
			read |= maskRX
		}

		if bit < size-1 {
			if b.Order == LSBFirst {
				write >>= 1
				read >>= 1
			} else {
				write <<= 1
				read <<= 1
			}
		}
	}

	return read
}

// ReadWrite performs a bidirectional transfer: each word of write is
// shifted out while the word read back is stored into read. Either
// slice may be nil for a one-directional operation; a nil write sends
// zero words, a nil read discards the input. When both are non-nil they
// must have equal length. The transfer always runs to completion,
// driving exactly len*WordSize clock cycles.
func (b *Bus) ReadWrite(read, write []byte) {
	n := len(write)
	if write == nil {
		n = len(read)
	}

	for i := 0; i < n; i++ {
		var tx byte
		if write != nil {
			tx = write[i]
		}
		rx := b.TransferWord(tx)
		if read != nil {
			read[i] = rx
		}
	}
}

// Read fills buf with words read from the bus, transmitting zeros.
func (b *Bus) Read(buf []byte) {
	b.ReadWrite(buf, nil)
}

// Write shifts out the words of buf, discarding whatever is read back.
func (b *Bus) Write(buf []byte) {
	b.ReadWrite(nil, buf)
}
