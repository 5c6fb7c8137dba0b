package sspi_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odolgy/sspi"
	"github.com/odolgy/sspi/sspitest"
)

// cycleSamples returns the expected SCK oscillogram length for a
// transfer of n 8-bit words framed by the two settling samples.
func cycleSamples(n int) int { return 1 + n*16 + 1 }

func TestTx(t *testing.T) {
	t.Run("equal buffers", func(t *testing.T) {
		board := sspitest.NewBoard()
		if err := board.MISO.Drive(`___/^^^^^^^\_____/^\_/^\___/^\_/^`); err != nil {
			t.Fatal(err)
		}

		bus := &sspi.Bus{Pins: board}
		start(t, bus, board)

		r := make([]byte, 2)
		if err := bus.Tx([]byte{0x87, 0x5A}, r); err != nil {
			t.Fatalf("Tx: %v", err)
		}
		finish(t, board)

		if diff := cmp.Diff([]byte{0x78, 0xA5}, r); diff != "" {
			t.Errorf("read bytes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("write longer than read", func(t *testing.T) {
		board := sspitest.NewBoard()
		bus := &sspi.Bus{Pins: board}
		start(t, bus, board)

		r := make([]byte, 2)
		if err := bus.Tx([]byte{1, 2, 3, 4}, r); err != nil {
			t.Fatalf("Tx: %v", err)
		}
		finish(t, board)

		// All four words are clocked even though only two are kept.
		if got, want := len(board.SCK.Samples()), cycleSamples(4); got != want {
			t.Errorf("SCK samples = %d, want %d", got, want)
		}
	})

	t.Run("read longer than write", func(t *testing.T) {
		board := sspitest.NewBoard()
		bus := &sspi.Bus{Pins: board}
		start(t, bus, board)

		r := make([]byte, 3)
		if err := bus.Tx([]byte{0x55}, r); err != nil {
			t.Fatalf("Tx: %v", err)
		}
		finish(t, board)

		if got, want := len(board.SCK.Samples()), cycleSamples(3); got != want {
			t.Errorf("SCK samples = %d, want %d", got, want)
		}
		// The released MISO line reads high everywhere.
		if diff := cmp.Diff([]byte{0xFF, 0xFF, 0xFF}, r); diff != "" {
			t.Errorf("read bytes mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTransfer(t *testing.T) {
	board := sspitest.NewBoard()
	bus := &sspi.Bus{Pins: board}
	start(t, bus, board)

	got, err := bus.Transfer(0x5A)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	finish(t, board)

	if got != 0xFF { // released MISO reads high
		t.Errorf("Transfer(0x5A) = %#02X, want 0xFF", got)
	}
}
