package doc

import "github.com/MSM7x27A-Sources/android-hardware/pkg/cli"

var ArchitectureCmd = &cli.Command{
	UsageLine: "architecture",
	Short:     "display debug facility architecture overview",
	Long: `
The display manager's subsystems log through a debug filter. Each statement
carries a tag naming the subsystem it came from; the filter decides, from a
tag mask and a verbose level, whether the statement reaches the log sink.

    caller ──> debug.Handler ──> log.Logger ──> stderr / rotated log files
                  │   │
                  │   └──────> trace.Tracer ──> /debug/requests, /debug/events
                  │
                  └──────────> property.Store (memory, persist.* on bolt)
                                     ▲
                        debug.Watcher polls sdm.debug.*

Errors and warnings always go through. Info and debug statements go through
when their tag is enabled, verbose statements when their tag is enabled and
the verbose level is non-zero. The level is shared by every tag; disabling
any tag resets it.

debug-server owns one filter and one property store and exposes them over
gRPC (and grpc-web) on a single localhost port. The debug-client commands
(getprop, setprop, setdebug, debugstate) talk to it.
`,
}
