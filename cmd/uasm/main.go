// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	goflag "flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/uasm/asm"
	"github.com/ezrec/uasm/object"
	"github.com/ezrec/uasm/translate"
)

var debug bool

// rootCmd drives the batch. Every base name is assembled with a fresh
// session, so one unit's failure never disturbs the next.
var rootCmd = &cobra.Command{
	Use:   "uasm basename...",
	Short: "Two-pass macro assembler for a small teaching CPU",
	Long: `Uasm assembles .as source units into loadable artifacts.

Each unit runs through three stages: the macro preprocessor writes the
flattened .am intermediate, the first pass sizes statements and binds
labels, and the second pass encodes words. A clean unit produces an
object image (.ob) plus, when present, exported entry symbols (.ent)
and external use-sites (.ext). A unit with any recorded defect produces
no artifacts at all.
`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, arg := range args {
			err := process(arg)
			if err != nil {
				glog.Errorf("%v: %v", arg, err)
				failed++
			}
		}

		fmt.Print(translate.From("%v of %v units assembled\n", len(args)-failed, len(args)))

		if failed > 0 {
			return errors.New(translate.From("%v units failed", failed))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "dump session state after each unit")
	rootCmd.Flags().AddGoFlagSet(goflag.CommandLine)
}

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// process assembles one unit and writes its artifacts.
func process(arg string) (err error) {
	base := strings.TrimSuffix(arg, asm.SourceExt)
	dir, stem := filepath.Split(base)
	if dir == "" {
		dir = "."
	}

	cfg := asm.DefaultConfig(base)
	sess := asm.NewSession(cfg)

	input, err := os.Open(base + asm.SourceExt)
	if err != nil {
		return
	}
	defer input.Close()

	glog.V(1).Infof("%v: expanding macros", sess.SourceName())
	lines, err := sess.Expand(input)
	if err != nil {
		return
	}

	filesys := object.DirFS(dir)
	err = writeExpanded(filesys, stem+asm.ExpandedExt, lines)
	if err != nil {
		return
	}

	glog.V(1).Infof("%v: assembling", sess.ExpandedName())
	err = sess.Assemble(lines)
	if err != nil {
		return
	}

	if debug {
		dump(sess)
	}

	return object.WriteUnit(filesys, stem, sess.Image(), sess.Entries(), sess.ExternalUses())
}

// writeExpanded saves the macro-expanded intermediate.
func writeExpanded(filesys object.CreateFS, name string, lines []string) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	for _, line := range lines {
		_, err = fmt.Fprintln(file, line)
		if err != nil {
			file.Close()
			return
		}
	}

	return file.Close()
}

// dump pretty-prints the session's tables for inspection.
func dump(sess *asm.Session) {
	var symbols []asm.Symbol
	for _, sym := range sess.Symbols().All() {
		symbols = append(symbols, *sym)
	}

	pp.Fprintf(os.Stderr, "Symbols: %v\n", symbols)
	pp.Fprintf(os.Stderr, "Externals: %v\n", sess.Externals())
	pp.Fprintf(os.Stderr, "Image: %v\n", sess.Image())
}
