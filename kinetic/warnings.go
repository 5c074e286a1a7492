package kinetic

import (
	"fmt"
	"sync"
)

const maxStoredWarnings = 64

/*
	WarningLog collects recoverable physics warnings (negative temperature,
	NaN field state) without halting the run. The driver decides whether an
	accumulated count should stop a simulation.
*/
type WarningLog struct {
	mu    sync.Mutex
	count int
	msgs  []string
}

func NewWarningLog() *WarningLog {
	return &WarningLog{}
}

func (wl *WarningLog) Warnf(format string, args ...interface{}) {
	wl.mu.Lock()
	wl.count++
	if len(wl.msgs) < maxStoredWarnings {
		wl.msgs = append(wl.msgs, fmt.Sprintf(format, args...))
	}
	wl.mu.Unlock()
}

func (wl *WarningLog) Count() int {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	return wl.count
}

func (wl *WarningLog) Messages() []string {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	out := make([]string, len(wl.msgs))
	copy(out, wl.msgs)
	return out
}
