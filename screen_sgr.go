// File: screen_sgr.go
// Summary: SGR (Select Graphic Rendition) parameter handling.
// Usage: Dispatched from the CSI 'm' handler; also invoked internally by DECSCNM toggling.
// Notes: Grounded on original_source/pyte/screens.py's select_graphic_rendition and the
// teacher's vterm_sgr.go for the i+=2/i+=4 sub-parameter consumption pattern.

package vtcore

// SelectGraphicRendition applies a list of SGR codes to the cursor's pen
// style. If the screen was constructed with WithDisableDisplayGraphic(true),
// this always resets to the default style regardless of params, matching
// select_graphic_rendition(0).
func (s *Screen) SelectGraphicRendition(params ...int) {
	if len(params) == 0 || (len(params) == 1 && params[0] == 0) || s.disableDisplayGraphic {
		s.cursor.Attrs = s.DefaultChar()
		return
	}

	style := s.cursor.Attrs.Style
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == 0:
			style = s.DefaultChar().Style
		case p == 1:
			style.Bold = true
		case p == 3:
			style.Italics = true
		case p == 4:
			style.Underscore = true
		case p == 5:
			style.Blink = true
		case p == 7:
			style.Reverse = true
		case p == 9:
			style.Strikethrough = true
		case p == 22:
			style.Bold = false
		case p == 23:
			style.Italics = false
		case p == 24:
			style.Underscore = false
		case p == 25:
			style.Blink = false
		case p == 27:
			style.Reverse = false
		case p == 29:
			style.Strikethrough = false
		case p >= 30 && p <= 37:
			style.FG = ansiColorName(p - 30)
		case p == 39:
			style.FG = "default"
		case p >= 40 && p <= 47:
			style.BG = ansiColorName(p - 40)
		case p == 49:
			style.BG = "default"
		case p >= 90 && p <= 97:
			style.FG = ansiColorName(p - 90 + 8)
		case p >= 100 && p <= 107:
			style.BG = ansiColorName(p - 100 + 8)
		case p == 38, p == 48:
			key := &style.FG
			if p == 48 {
				key = &style.BG
			}
			if i+1 >= len(params) {
				i = len(params)
				break
			}
			switch params[i+1] {
			case 5:
				if i+2 >= len(params) {
					i = len(params)
					break
				}
				*key = xterm256Hex(params[i+2])
				i += 2
			case 2:
				if i+4 >= len(params) {
					i = len(params)
					break
				}
				*key = hexRGB(params[i+2], params[i+3], params[i+4])
				i += 4
			default:
				i = len(params)
			}
		}
		i++
	}

	s.cursor.Attrs.Style = style
}

func hexRGB(r, g, b int) string {
	const hexDigits = "0123456789abcdef"
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	r, g, b = clamp(r), clamp(g), clamp(b)
	buf := make([]byte, 0, 6)
	for _, v := range [3]int{r, g, b} {
		buf = append(buf, hexDigits[v>>4], hexDigits[v&0xF])
	}
	return string(buf)
}
