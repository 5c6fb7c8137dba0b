package sspi_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/odolgy/sspi"
	"github.com/odolgy/sspi/sspitest"
)

func TestMode(t *testing.T) {
	testCases := []struct {
		mode sspi.Mode
		cpol bool
		cpha bool
	}{
		{sspi.Mode0, false, false},
		{sspi.Mode1, false, true},
		{sspi.Mode2, true, false},
		{sspi.Mode3, true, true},
	}

	for _, tc := range testCases {
		if got := tc.mode.Polarity(); got != tc.cpol {
			t.Errorf("Mode%d.Polarity() = %v, want %v", tc.mode, got, tc.cpol)
		}
		if got := tc.mode.Phase(); got != tc.cpha {
			t.Errorf("Mode%d.Phase() = %v, want %v", tc.mode, got, tc.cpha)
		}

		var bus sspi.Bus
		bus.SetMode(tc.mode)
		if bus.CPOL != tc.cpol || bus.CPHA != tc.cpha {
			t.Errorf("SetMode(Mode%d): CPOL=%v CPHA=%v, want CPOL=%v CPHA=%v",
				tc.mode, bus.CPOL, bus.CPHA, tc.cpol, tc.cpha)
		}
	}
}

// TestPinFuncs drives the same transfer through the function-slot
// adapter and through the board directly; both must behave identically.
func TestPinFuncs(t *testing.T) {
	board := sspitest.NewBoard()
	if err := board.MISO.Drive(`___/^^^^^^^\_____/^\_/^\___/^\_/^`); err != nil {
		t.Fatal(err)
	}

	bus := &sspi.Bus{Pins: &sspi.PinFuncs{
		SetSCKFn:  board.SetSCK,
		SetMOSIFn: board.SetMOSI,
		GetMISOFn: board.GetMISO,
		DelayFn:   board.Delay,
	}}
	start(t, bus, board)

	rd := make([]byte, 2)
	bus.ReadWrite(rd, []byte{0x87, 0x5A})
	finish(t, board)

	if diff := cmp.Diff([]byte{0x78, 0xA5}, rd); diff != "" {
		t.Errorf("read bytes mismatch (-want +got):\n%s", diff)
	}
	if got, want := board.SCK.Samples(), `\_/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\/\`; got != want {
		t.Errorf("SCK:\n got %s\nwant %s", got, want)
	}
}
