package doc

import "github.com/MSM7x27A-Sources/android-hardware/pkg/cli"

var TagsCmd = &cli.Command{
	UsageLine: "tags",
	Short:     "debug tags and the properties that toggle them",
	Long: `
Tag            Property                 Subsystem
none           (always enabled)         untagged statements
resources      sdm.debug.resources      resource manager
strategy       sdm.debug.strategy       composition strategy
comp-manager   sdm.debug.comp_manager   composition manager
driver-config  sdm.debug.driver_config  display driver configuration
rotator        sdm.debug.rotator        rotator
qdcm           sdm.debug.qdcm           color management
all            sdm.debug.all            every tag above

A property value N <= 0 disables the tag, N >= 1 enables it with verbose
level N-1, and an empty value disables it. A change to sdm.debug.all is
applied first, then the per-tag properties that are set.

The verbose level is shared by every tag, and disabling any tag resets it to
0. Per-tag properties are applied after sdm.debug.all, so they decide the
level: sdm.debug.all=3 with sdm.debug.rotator=0 set leaves verbose output
off for every tag.

sdm.idle_time holds the idle timeout in milliseconds (70 when unset).
`,
}
