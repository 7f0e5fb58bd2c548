// Package base carries the scaffolding shared by all CLI commands.
package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command holds the dependencies every command needs.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// FlagSet wraps flag.FlagSet with help rendering for command Help() text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps a flag.FlagSet.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the flag set as an options block for appending to a
// command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "  -%s\n", fl.Name)
		fmt.Fprintf(&b, "      %s", fl.Usage)
		if fl.DefValue != "" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}
