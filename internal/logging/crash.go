package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// LogPanic records a recovered panic on logger with its stack and runtime
// info, then re-panics. Use it with defer:
//
//	defer logging.LogPanic(logging.FromContext(ctx))
//
// so that a crash under the terminal UI still reaches the log file.
func LogPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if logger == nil {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s", r, debug.Stack())
		panic(r)
	}

	writePanic(logger, r, debug.Stack())
	panic(r)
}

func writePanic(logger *zerolog.Logger, r any, stack []byte) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.WithLevel(zerolog.FatalLevel).
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("goroutines", runtime.NumGoroutine()).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint32("num_gc", m.NumGC).
		Bytes("stack", stack).
		Msg("crash")
}
