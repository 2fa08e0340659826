package gpio

import (
	"fmt"
	"strings"
)

// LabelType selects which controller vocabulary button names are shown in.
type LabelType string

const (
	LabelsGP2040 LabelType = "gp2040"
	LabelsXInput LabelType = "xinput"
	LabelsSwitch LabelType = "switch"
	LabelsPS3    LabelType = "ps3"
	LabelsPS4    LabelType = "ps4"
	LabelsDInput LabelType = "dinput"
	LabelsArcade LabelType = "arcade"
)

// ButtonNames maps a button key (B1, L3, A2, ...) to a display name.
type ButtonNames map[string]string

// Lookup returns the display name for key if one is defined.
func (n ButtonNames) Lookup(key string) (string, bool) {
	v, ok := n[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

var buttonLabels = map[LabelType]ButtonNames{
	LabelsGP2040: {
		"B1": "B1", "B2": "B2", "B3": "B3", "B4": "B4",
		"L1": "L1", "R1": "R1", "L2": "L2", "R2": "R2",
		"S1": "S1", "S2": "S2", "L3": "L3", "R3": "R3",
		"A1": "A1", "A2": "A2",
	},
	LabelsXInput: {
		"B1": "A", "B2": "B", "B3": "X", "B4": "Y",
		"L1": "LB", "R1": "RB", "L2": "LT", "R2": "RT",
		"S1": "Back", "S2": "Start", "L3": "LS", "R3": "RS",
		"A1": "Guide",
	},
	LabelsSwitch: {
		"B1": "B", "B2": "A", "B3": "Y", "B4": "X",
		"L1": "L", "R1": "R", "L2": "ZL", "R2": "ZR",
		"S1": "Minus", "S2": "Plus", "L3": "LS", "R3": "RS",
		"A1": "Home", "A2": "Capture",
	},
	LabelsPS3: {
		"B1": "Cross", "B2": "Circle", "B3": "Square", "B4": "Triangle",
		"L1": "L1", "R1": "R1", "L2": "L2", "R2": "R2",
		"S1": "Select", "S2": "Start", "L3": "L3", "R3": "R3",
		"A1": "PS",
	},
	LabelsPS4: {
		"B1": "Cross", "B2": "Circle", "B3": "Square", "B4": "Triangle",
		"L1": "L1", "R1": "R1", "L2": "L2", "R2": "R2",
		"S1": "Share", "S2": "Options", "L3": "L3", "R3": "R3",
		"A1": "PS", "A2": "Touchpad",
	},
	LabelsDInput: {
		"B1": "2", "B2": "3", "B3": "1", "B4": "4",
		"L1": "5", "R1": "6", "L2": "7", "R2": "8",
		"S1": "9", "S2": "10", "L3": "11", "R3": "12",
		"A1": "13", "A2": "14",
	},
	LabelsArcade: {
		"B1": "K1", "B2": "K2", "B3": "P1", "B4": "P2",
		"L1": "P4", "R1": "P3", "L2": "K4", "R2": "K3",
		"S1": "Select", "S2": "Start", "L3": "LS", "R3": "RS",
		"A1": "Home",
	},
}

// LabelTypes returns the supported label vocabularies.
func LabelTypes() []LabelType {
	return []LabelType{LabelsGP2040, LabelsXInput, LabelsSwitch, LabelsPS3, LabelsPS4, LabelsDInput, LabelsArcade}
}

// ButtonLabels returns a copy of the name table for t.
// swapTpShare exchanges the S1 and A2 names (PS4 only).
func ButtonLabels(t LabelType, swapTpShare bool) (ButtonNames, error) {
	src, ok := buttonLabels[LabelType(strings.ToLower(string(t)))]
	if !ok {
		return nil, fmt.Errorf("unknown button label type %q", t)
	}
	out := make(ButtonNames, len(src))
	for k, v := range src {
		out[k] = v
	}
	if swapTpShare && LabelType(strings.ToLower(string(t))) == LabelsPS4 {
		out["S1"], out["A2"] = src["A2"], src["S1"]
	}
	return out, nil
}
