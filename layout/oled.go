package layout

import (
	"fmt"
	"strings"
)

// OLEDSplitX divides buttons between the A (left) and B (right) macro.
const OLEDSplitX = 64

var oledRadius = map[Size]int{
	SizeSmall:  3,
	SizeMedium: 6,
	SizeLarge:  7,
}

// unknown sizes; Validate rejects them, hand-built layouts may not
const oledFallbackRadius = 5

// OLEDMacros renders the layout as DEFAULT_BOARD_LAYOUT_A/B #define macros for
// the firmware's board-defined display layouts. Buttons with x < 64 go to A.
func OLEDMacros(l *BoardLayout) string {
	var left, right []string
	for _, b := range l.Buttons {
		r, ok := oledRadius[b.EffectiveSize()]
		if !ok {
			r = oledFallbackRadius
		}
		entry := fmt.Sprintf("    {GP_ELEMENT_PIN_BUTTON, {%3d, %3d, %d, %d, 1, 1, %-3d, GP_SHAPE_ELLIPSE}}",
			b.X, b.Y, r, r, b.Pin)
		if b.X < OLEDSplitX {
			left = append(left, entry)
		} else {
			right = append(right, entry)
		}
	}

	var sb strings.Builder
	sb.WriteString(oledMacro("DEFAULT_BOARD_LAYOUT_A", left))
	sb.WriteString("\n\n")
	sb.WriteString(oledMacro("DEFAULT_BOARD_LAYOUT_B", right))
	sb.WriteString("\n")
	return sb.String()
}

func oledMacro(name string, entries []string) string {
	if len(entries) == 0 {
		return "#define " + name + " {}"
	}
	return "#define " + name + " {\\\n" + strings.Join(entries, ",\\\n") + "\\\n  }"
}
