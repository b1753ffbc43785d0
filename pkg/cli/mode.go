package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// modeFlags resolves the mutually exclusive run mode flags shared by the
// pipeline commands.
type modeFlags struct {
	checkOnly bool
	dryRun    bool
	autoFix   bool
}

func (x *modeFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "check-only",
			Usage:       "Report findings without computing fixes",
			Category:    "Mode",
			Destination: &x.checkOnly,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Compute all actions but write nothing",
			Category:    "Mode",
			Destination: &x.dryRun,
		},
		&cli.BoolFlag{
			Name:        "auto-fix",
			Usage:       "Apply changes to the catalog store",
			Category:    "Mode",
			Destination: &x.autoFix,
		},
	}
}

func (x *modeFlags) Mode(fallback types.RunMode) (types.RunMode, error) {
	set := 0
	mode := fallback
	if x.checkOnly {
		set++
		mode = types.RunModeCheckOnly
	}
	if x.dryRun {
		set++
		mode = types.RunModeDryRun
	}
	if x.autoFix {
		set++
		mode = types.RunModeAutoFix
	}
	if set > 1 {
		return "", goerr.Wrap(types.ErrInvalidOption, "--check-only, --dry-run and --auto-fix are mutually exclusive")
	}
	return mode, nil
}
