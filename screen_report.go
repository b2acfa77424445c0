// File: screen_report.go
// Summary: Device-attribute and device-status reporting (DA/DSR).
// Usage: Dispatched from the CSI 'c'/'n' handlers; replies go through WriteProcessInput.

package vtcore

import "fmt"

// ReportDeviceAttributes answers a primary DA request (mode 0, non-private)
// with "CSI ?6c"; any other mode or a private request is ignored, matching
// VT220 behavior for secondary DA.
func (s *Screen) ReportDeviceAttributes(mode int, private bool) {
	if mode == 0 && !private {
		s.WriteProcessInput("\x1b[?6c")
	}
}

// ReportDeviceStatus answers mode 5 (terminal status) with "CSI 0n" and
// mode 6 (cursor position) with "CSI y;x R" (1-based, y relative to the top
// margin under DECOM); any other mode is ignored.
func (s *Screen) ReportDeviceStatus(mode int) {
	switch mode {
	case 5:
		s.WriteProcessInput("\x1b[0n")
	case 6:
		x, y := s.cursor.X+1, s.cursor.Y+1
		if s.hasMode(ModeDECOM, true) {
			y -= s.margins.Top
		}
		s.WriteProcessInput(fmt.Sprintf("\x1b[%d;%dR", y, x))
	}
}
