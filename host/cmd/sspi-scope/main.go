// sspi-scope runs a software SPI transfer against the emulated pin
// board and prints the resulting oscillograms. Useful for eyeballing
// how a CPOL/CPHA/bit-order/word-size combination looks on the wire
// before pointing the bus at real hardware.
//
// Example:
//
//	sspi-scope -mode 0 -write 875A -miso '___/^^^^^^^\_____/^\_/^\___/^\_/^'
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/odolgy/sspi"
	"github.com/odolgy/sspi/sspitest"
)

var (
	mode     = flag.Int("mode", 0, "SPI mode (0-3)")
	lsb      = flag.Bool("lsb", false, "Transmit least significant bit first")
	wordSize = flag.Int("word", 8, "Word size in bits (1-8)")
	write    = flag.String("write", "", "Bytes to transmit, hex encoded")
	miso     = flag.String("miso", "", "Waveform driven on MISO by the emulated device (_^/\\ alphabet)")
	readLen  = flag.Int("read", 0, "Number of words to read when -write is empty")
)

func main() {
	flag.Parse()

	if *mode < 0 || *mode > 3 {
		fmt.Fprintf(os.Stderr, "Error: mode %d out of range 0-3\n", *mode)
		os.Exit(1)
	}

	wr, err := hex.DecodeString(*write)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad -write value: %v\n", err)
		os.Exit(1)
	}

	n := len(wr)
	if n == 0 {
		n = *readLen
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to transfer, pass -write or -read")
		os.Exit(1)
	}

	board := sspitest.NewBoard()
	if err := board.MISO.Drive(*miso); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bus := &sspi.Bus{
		Pins:     board,
		WordSize: *wordSize,
	}
	bus.SetMode(sspi.Mode(*mode))
	if *lsb {
		bus.Order = sspi.LSBFirst
	}

	// Align the lines with the configuration, then let one half period
	// pass so the oscillogram starts from the established idle levels.
	bus.Reset()
	board.Settle()

	rd := make([]byte, n)
	if len(wr) > 0 {
		bus.ReadWrite(rd, wr)
	} else {
		bus.Read(rd)
	}
	board.Settle()

	if err := board.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("mode=%d order=%s word=%d\n", *mode, order(*lsb), *wordSize)
	fmt.Printf("wrote: %s\n", hexOrDash(wr))
	fmt.Printf("read:  %X\n\n", rd)
	fmt.Printf("SCK:  %s\n", board.SCK.Samples())
	fmt.Printf("MOSI: %s\n", board.MOSI.Samples())
	fmt.Printf("MISO: %s\n", board.MISO.Samples())
}

func order(lsb bool) string {
	if lsb {
		return "lsb"
	}
	return "msb"
}

func hexOrDash(b []byte) string {
	if len(b) == 0 {
		return "-"
	}
	return fmt.Sprintf("%X", b)
}
