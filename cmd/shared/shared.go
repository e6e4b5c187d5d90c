// Package shared provides common CLI flag definitions and utility functions
// used across trianglefree's command-line interface.
package shared

import (
	"strings"

	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// ModulusFlag is the name of the flag to specify the modulus n.
const ModulusFlag = "modulus"

// ElementsFlag is the name of the flag to pass elements as a list, which
// also accepts negative numbers.
const ElementsFlag = "elements"

// DedupFlag is the name of the flag to drop repeated values before enumerating.
const DedupFlag = "dedup"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// GetBaseDescription returns the description of how elements are passed to
// CLI commands.
func GetBaseDescription() string {
	return strings.Join([]string{
		"Pass elements as arguments like this: 1 2 3, 1,2,3 or '{1, 2, 3}'.",
		"Without arguments, elements are read from stdin unless it is a terminal.",
		"Negative elements go in a braced argument like '{-1,2,4}' or in --elements -1,2,4.",
	}, "\n")
}

// GetArgsUsage returns the arguments usage string for CLI commands.
func GetArgsUsage() string {
	return strings.Join([]string{
		"[elements...]",
	}, " ")
}

// GetCommonFlags returns the CLI flags used by every command that takes a set.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:     ElementsFlag,
			Aliases:  []string{"e"},
			Usage:    "Elements as a comma-separated list, e.g. -e -1,2,4 (may be repeated, prepended to arguments)",
			Category: categoryCommon,
			Value:    []string{},
			Required: false,
		},
		&cli.BoolFlag{
			Name:     DedupFlag,
			Aliases:  []string{"d"},
			Usage:    "Remove repeated values (keeping the first) before enumerating",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

const categoryCheck = "check"

// StrictFlag is the name of the flag to reject sets with fewer than 3 elements.
const StrictFlag = "strict"

// AllFlag is the name of the flag to print every combination after the verdict.
const AllFlag = "all"

// TimeoutFlag is the name of the flag to specify the check timeout in milliseconds.
const TimeoutFlag = "timeout"

// ConfigFlag is the name of the flag to specify a YAML config file.
const ConfigFlag = "config"

// GetCheckFlags returns the CLI flags specific to the check command.
func GetCheckFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     ModulusFlag,
			Aliases:  []string{"n"},
			Usage:    "Modulus n, must be positive (may also come from --config)",
			Category: categoryCheck,
			Value:    0,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     StrictFlag,
			Usage:    "Fail on sets with fewer than 3 elements instead of reporting them triangle-free",
			Category: categoryCheck,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     AllFlag,
			Aliases:  []string{"a"},
			Usage:    "Print every combination with its residue",
			Category: categoryCheck,
			Value:    false,
			Required: false,
		},
		&cli.IntFlag{
			Name:     TimeoutFlag,
			Aliases:  []string{"t"},
			Usage:    "Abort the check after this many milliseconds, 0 disables the timeout",
			Category: categoryCheck,
			Value:    0,
			Required: false,
		},
		&cli.StringFlag{
			Name:     ConfigFlag,
			Aliases:  []string{"c"},
			Usage:    "YAML file with modulus, elements, deduplicate and strict keys; flags take precedence",
			Category: categoryCheck,
			Value:    "",
			Required: false,
		},
	}
}

const categoryCombinations = "combinations"

// GetCombinationsFlags returns the CLI flags specific to the combinations command.
func GetCombinationsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     ModulusFlag,
			Aliases:  []string{"n"},
			Usage:    "Show each sum's residue mod n and mark multiples of n",
			Category: categoryCombinations,
			Value:    0,
			Required: false,
		},
	}
}
