package sspi

import "tinygo.org/x/drivers"

// Bus satisfies the drivers.SPI bus interface so device drivers can sit
// directly on top of a bit-banged bus.
var _ drivers.SPI = (*Bus)(nil)

// Tx matches the signature of machine.SPI.Tx. Buffers of unequal length
// are allowed: extra words of w are sent with the response discarded,
// extra words of r are filled by sending zeros.
func (b *Bus) Tx(w, r []byte) error {
	n := len(w)
	if len(r) > n {
		n = len(r)
	}

	for i := 0; i < n; i++ {
		var tx byte
		if i < len(w) {
			tx = w[i]
		}
		rx := b.TransferWord(tx)
		if i < len(r) {
			r[i] = rx
		}
	}

	return nil
}

// Transfer sends one word and returns the word read back. The error is
// always nil; it exists to satisfy the bus interface.
func (b *Bus) Transfer(w byte) (byte, error) {
	return b.TransferWord(w), nil
}
