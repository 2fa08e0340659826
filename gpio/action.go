// Package gpio defines the GPIO action vocabulary and the combo bitmasks a pin
// can be mapped to.
package gpio

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is the logical meaning assigned to a physical pin.
// Values are persisted and must never be renumbered.
type Action int32

const (
	None            Action = -10
	Reserved        Action = -5
	AssignedToAddon Action = 0

	ButtonPressUp    Action = 1
	ButtonPressDown  Action = 2
	ButtonPressLeft  Action = 3
	ButtonPressRight Action = 4
	ButtonPressB1    Action = 5
	ButtonPressB2    Action = 6
	ButtonPressB3    Action = 7
	ButtonPressB4    Action = 8
	ButtonPressL1    Action = 9
	ButtonPressR1    Action = 10
	ButtonPressL2    Action = 11
	ButtonPressR2    Action = 12
	ButtonPressS1    Action = 13
	ButtonPressS2    Action = 14
	ButtonPressA1    Action = 15
	ButtonPressA2    Action = 16
	ButtonPressL3    Action = 17
	ButtonPressR3    Action = 18
	ButtonPressFn    Action = 19

	ButtonPressDDIUp    Action = 20
	ButtonPressDDIDown  Action = 21
	ButtonPressDDILeft  Action = 22
	ButtonPressDDIRight Action = 23

	SustainDPModeDP Action = 24
	SustainDPModeLS Action = 25
	SustainDPModeRS Action = 26

	SustainSOCDModeUpPrio    Action = 27
	SustainSOCDModeNeutral   Action = 28
	SustainSOCDModeSecondWin Action = 29
	SustainSOCDModeFirstWin  Action = 30
	SustainSOCDModeBypass    Action = 31

	ButtonPressTurbo  Action = 32
	ButtonPressMacro  Action = 33
	ButtonPressMacro1 Action = 34
	ButtonPressMacro2 Action = 35
	ButtonPressMacro3 Action = 36
	ButtonPressMacro4 Action = 37
	ButtonPressMacro5 Action = 38
	ButtonPressMacro6 Action = 39

	ButtonPressA3  Action = 40
	ButtonPressA4  Action = 41
	ButtonPressE1  Action = 42
	ButtonPressE2  Action = 43
	ButtonPressE3  Action = 44
	ButtonPressE4  Action = 45
	ButtonPressE5  Action = 46
	ButtonPressE6  Action = 47
	ButtonPressE7  Action = 48
	ButtonPressE8  Action = 49
	ButtonPressE9  Action = 50
	ButtonPressE10 Action = 51
	ButtonPressE11 Action = 52
	ButtonPressE12 Action = 53

	DigitalDirectionUp    Action = 54
	DigitalDirectionDown  Action = 55
	DigitalDirectionLeft  Action = 56
	DigitalDirectionRight Action = 57

	AnalogDirectionLSXNeg  Action = 58
	AnalogDirectionLSXPos  Action = 59
	AnalogDirectionLSYNeg  Action = 60
	AnalogDirectionLSYPos  Action = 61
	AnalogDirectionRSXNeg  Action = 62
	AnalogDirectionRSXPos  Action = 63
	AnalogDirectionRSYNeg  Action = 64
	AnalogDirectionRSYPos  Action = 65
	AnalogDirectionModLow  Action = 66
	AnalogDirectionModHigh Action = 67

	ButtonPressInputReverse Action = 68
	Sustain4Way8WayMode     Action = 69
	SustainFocusMode        Action = 70

	CustomButtonCombo Action = 71
	CustomDpadCombo   Action = 72
)

// actionNames lists every action in declaration order.
var actionNames = []struct {
	a    Action
	name string
}{
	{None, "NONE"},
	{Reserved, "RESERVED"},
	{AssignedToAddon, "ASSIGNED_TO_ADDON"},
	{ButtonPressUp, "BUTTON_PRESS_UP"},
	{ButtonPressDown, "BUTTON_PRESS_DOWN"},
	{ButtonPressLeft, "BUTTON_PRESS_LEFT"},
	{ButtonPressRight, "BUTTON_PRESS_RIGHT"},
	{ButtonPressB1, "BUTTON_PRESS_B1"},
	{ButtonPressB2, "BUTTON_PRESS_B2"},
	{ButtonPressB3, "BUTTON_PRESS_B3"},
	{ButtonPressB4, "BUTTON_PRESS_B4"},
	{ButtonPressL1, "BUTTON_PRESS_L1"},
	{ButtonPressR1, "BUTTON_PRESS_R1"},
	{ButtonPressL2, "BUTTON_PRESS_L2"},
	{ButtonPressR2, "BUTTON_PRESS_R2"},
	{ButtonPressS1, "BUTTON_PRESS_S1"},
	{ButtonPressS2, "BUTTON_PRESS_S2"},
	{ButtonPressA1, "BUTTON_PRESS_A1"},
	{ButtonPressA2, "BUTTON_PRESS_A2"},
	{ButtonPressL3, "BUTTON_PRESS_L3"},
	{ButtonPressR3, "BUTTON_PRESS_R3"},
	{ButtonPressFn, "BUTTON_PRESS_FN"},
	{ButtonPressDDIUp, "BUTTON_PRESS_DDI_UP"},
	{ButtonPressDDIDown, "BUTTON_PRESS_DDI_DOWN"},
	{ButtonPressDDILeft, "BUTTON_PRESS_DDI_LEFT"},
	{ButtonPressDDIRight, "BUTTON_PRESS_DDI_RIGHT"},
	{SustainDPModeDP, "SUSTAIN_DP_MODE_DP"},
	{SustainDPModeLS, "SUSTAIN_DP_MODE_LS"},
	{SustainDPModeRS, "SUSTAIN_DP_MODE_RS"},
	{SustainSOCDModeUpPrio, "SUSTAIN_SOCD_MODE_UP_PRIO"},
	{SustainSOCDModeNeutral, "SUSTAIN_SOCD_MODE_NEUTRAL"},
	{SustainSOCDModeSecondWin, "SUSTAIN_SOCD_MODE_SECOND_WIN"},
	{SustainSOCDModeFirstWin, "SUSTAIN_SOCD_MODE_FIRST_WIN"},
	{SustainSOCDModeBypass, "SUSTAIN_SOCD_MODE_BYPASS"},
	{ButtonPressTurbo, "BUTTON_PRESS_TURBO"},
	{ButtonPressMacro, "BUTTON_PRESS_MACRO"},
	{ButtonPressMacro1, "BUTTON_PRESS_MACRO_1"},
	{ButtonPressMacro2, "BUTTON_PRESS_MACRO_2"},
	{ButtonPressMacro3, "BUTTON_PRESS_MACRO_3"},
	{ButtonPressMacro4, "BUTTON_PRESS_MACRO_4"},
	{ButtonPressMacro5, "BUTTON_PRESS_MACRO_5"},
	{ButtonPressMacro6, "BUTTON_PRESS_MACRO_6"},
	{ButtonPressA3, "BUTTON_PRESS_A3"},
	{ButtonPressA4, "BUTTON_PRESS_A4"},
	{ButtonPressE1, "BUTTON_PRESS_E1"},
	{ButtonPressE2, "BUTTON_PRESS_E2"},
	{ButtonPressE3, "BUTTON_PRESS_E3"},
	{ButtonPressE4, "BUTTON_PRESS_E4"},
	{ButtonPressE5, "BUTTON_PRESS_E5"},
	{ButtonPressE6, "BUTTON_PRESS_E6"},
	{ButtonPressE7, "BUTTON_PRESS_E7"},
	{ButtonPressE8, "BUTTON_PRESS_E8"},
	{ButtonPressE9, "BUTTON_PRESS_E9"},
	{ButtonPressE10, "BUTTON_PRESS_E10"},
	{ButtonPressE11, "BUTTON_PRESS_E11"},
	{ButtonPressE12, "BUTTON_PRESS_E12"},
	{DigitalDirectionUp, "DIGITAL_DIRECTION_UP"},
	{DigitalDirectionDown, "DIGITAL_DIRECTION_DOWN"},
	{DigitalDirectionLeft, "DIGITAL_DIRECTION_LEFT"},
	{DigitalDirectionRight, "DIGITAL_DIRECTION_RIGHT"},
	{AnalogDirectionLSXNeg, "ANALOG_DIRECTION_LS_X_NEG"},
	{AnalogDirectionLSXPos, "ANALOG_DIRECTION_LS_X_POS"},
	{AnalogDirectionLSYNeg, "ANALOG_DIRECTION_LS_Y_NEG"},
	{AnalogDirectionLSYPos, "ANALOG_DIRECTION_LS_Y_POS"},
	{AnalogDirectionRSXNeg, "ANALOG_DIRECTION_RS_X_NEG"},
	{AnalogDirectionRSXPos, "ANALOG_DIRECTION_RS_X_POS"},
	{AnalogDirectionRSYNeg, "ANALOG_DIRECTION_RS_Y_NEG"},
	{AnalogDirectionRSYPos, "ANALOG_DIRECTION_RS_Y_POS"},
	{AnalogDirectionModLow, "ANALOG_DIRECTION_MOD_LOW"},
	{AnalogDirectionModHigh, "ANALOG_DIRECTION_MOD_HIGH"},
	{ButtonPressInputReverse, "BUTTON_PRESS_INPUT_REVERSE"},
	{Sustain4Way8WayMode, "SUSTAIN_4_8_WAY_MODE"},
	{SustainFocusMode, "SUSTAIN_FOCUS_MODE"},
	{CustomButtonCombo, "CUSTOM_BUTTON_COMBO"},
	{CustomDpadCombo, "CUSTOM_DPAD_COMBO"},
}

var (
	nameByAction = map[Action]string{}
	actionByName = map[string]Action{}
)

func init() {
	for _, e := range actionNames {
		nameByAction[e.a] = e.name
		actionByName[e.name] = e.a
	}
}

// Actions returns every known action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i, e := range actionNames {
		out[i] = e.a
	}
	return out
}

// String returns the canonical upper-case name, e.g. "BUTTON_PRESS_B1".
func (a Action) String() string {
	if n, ok := nameByAction[a]; ok {
		return n
	}
	return "GpioAction(" + strconv.Itoa(int(a)) + ")"
}

// Known reports whether a is part of the action set.
func (a Action) Known() bool {
	_, ok := nameByAction[a]
	return ok
}

// IsCombo reports whether a is one of the two combo markers.
func (a Action) IsCombo() bool {
	return a == CustomButtonCombo || a == CustomDpadCombo
}

// ParseAction resolves a name (case-insensitive) or a decimal value to an Action.
func ParseAction(s string) (Action, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if a, ok := actionByName[name]; ok {
		return a, nil
	}
	if n, err := strconv.ParseInt(name, 10, 32); err == nil {
		if a := Action(n); a.Known() {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown gpio action %q", s)
}
