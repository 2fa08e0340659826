package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/gpiomap/pinmap"
)

// Journal records pin assignment changes, one line per change.
type Journal interface {
	Record(profile, pinKey string, before, after pinmap.Payload)
}

type journal struct {
	w   io.Writer
	now func() time.Time
	mu  sync.Mutex
}

// NewJournal returns a Journal writing to w. A nil writer discards records.
func NewJournal(w io.Writer) Journal {
	return &journal{w: w, now: time.Now}
}

func (j *journal) Record(profile, pinKey string, before, after pinmap.Payload) {
	if j.w == nil || before == after {
		return
	}
	line := fmt.Sprintf("%s profile=%q pin=%s %s -> %s\n",
		j.now().Format("2006/01/02 15:04:05"),
		profile,
		pinKey,
		formatPayload(before),
		formatPayload(after))

	j.mu.Lock()
	_, _ = io.WriteString(j.w, line)
	j.mu.Unlock()
}

func formatPayload(p pinmap.Payload) string {
	return fmt.Sprintf("%s[buttons=%#x dpad=%#x]", p.Action, p.CustomButtonMask, p.CustomDpadMask)
}
