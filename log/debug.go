// Debug mode with arrangement profiling. Enable by setting RG_DEBUG=1.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	DebugEnabled bool
	DebugLog     *stdlog.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "roomgrid-debug.log")

// InitDebug initializes debug logging if RG_DEBUG=1 is set.
// Called from Initialize.
func InitDebug() {
	if os.Getenv("RG_DEBUG") != "1" {
		// No-op logger so call sites never nil-check.
		DebugLog = stdlog.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open debug log file: %s", err)
		}
		DebugLog = stdlog.New(io.Discard, "", 0)
		return
	}

	DebugLog = stdlog.New(f, "DEBUG: ", stdlog.Ldate|stdlog.Ltime|stdlog.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("debug mode enabled")
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// ArrangeProfiler times the size→layout→page derivations so resize storms
// that outrun the frame budget show up in the debug log.
type ArrangeProfiler struct {
	mu       sync.RWMutex
	count    int64
	total    time.Duration
	min, max time.Duration
	lastAt   time.Time
}

var profiler = &ArrangeProfiler{}

// GetProfiler returns the global arrangement profiler.
func GetProfiler() *ArrangeProfiler {
	return profiler
}

// Start begins timing one arrangement pass. Call the returned function when
// the pass completes.
func (p *ArrangeProfiler) Start() func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.record(time.Since(start))
	}
}

func (p *ArrangeProfiler) record(elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.count == 0 || elapsed < p.min {
		p.min = elapsed
	}
	if elapsed > p.max {
		p.max = elapsed
	}
	p.count++
	p.total += elapsed
	p.lastAt = time.Now()

	// Past the 60fps frame budget.
	if elapsed > 16*time.Millisecond && DebugLog != nil {
		DebugLog.Printf("SLOW ARRANGE: %v", elapsed)
	}
}

// Stats returns a human-readable profiling summary.
func (p *ArrangeProfiler) Stats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("=== Arrange Profile ===\n")
	sb.WriteString(fmt.Sprintf("Passes: %d\n", p.count))
	if p.count > 0 {
		avg := p.total / time.Duration(p.count)
		sb.WriteString(fmt.Sprintf("avg=%v min=%v max=%v\n", avg, p.min, p.max))
	}
	return sb.String()
}

// Reset clears accumulated metrics.
func (p *ArrangeProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count = 0
	p.total = 0
	p.min = 0
	p.max = 0
}
