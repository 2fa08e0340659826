package cmd

import "github.com/Alia5/gpiomap/gpio"

// Globals are the flags shared by every command.
type Globals struct {
	Log    LogFlags   `embed:"" prefix:"log."`
	Labels LabelFlags `embed:"" prefix:"labels."`
}

type LogFlags struct {
	Level       string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"GPIOMAP_LOG_LEVEL"`
	Format      string `help:"Log format" enum:"text,json" default:"text" env:"GPIOMAP_LOG_FORMAT"`
	File        string `help:"Also write logs to this file" type:"path" env:"GPIOMAP_LOG_FILE"`
	JournalFile string `help:"Append one line per pin change to this file" type:"path" env:"GPIOMAP_JOURNAL_FILE"`
}

type LabelFlags struct {
	Type        string `help:"Button naming used for labels" enum:"gp2040,xinput,switch,ps3,ps4,dinput,arcade" default:"gp2040" env:"GPIOMAP_LABELS"`
	SwapTpShare bool   `help:"Swap the PS4 Touchpad and Share names" env:"GPIOMAP_SWAP_TP_SHARE"`
}

// Names returns the configured button name table.
func (l LabelFlags) Names() (gpio.ButtonNames, error) {
	return gpio.ButtonLabels(gpio.LabelType(l.Type), l.SwapTpShare)
}
