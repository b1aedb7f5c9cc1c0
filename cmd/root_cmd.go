package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/toml2json/parse/toml"
	"github.com/dzjyyds666/toml2json/pkg"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:                   "toml2json tomlfile",
	Short:                 "Convert a TOML document to JSON",
	Long:                  "toml2json parses a TOML file and prints the document as pretty-printed JSON on stdout.",
	DisableFlagsInUseLine: true,
	SilenceUsage:          true,
	SilenceErrors:         true,
	Args:                  cobra.ArbitraryArgs,
	Run:                   convertRun,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func convertRun(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: toml2json tomlfile")
		os.Exit(1)
	}

	exist, err := pkg.CheckFileExist(args[0])
	if err != nil || !exist {
		errorln("Error: File not found")
		os.Exit(2)
	}

	src, err := pkg.ReadFileAll(args[0])
	if err != nil {
		errorln("Error: File not found")
		os.Exit(2)
	}

	root, err := toml.ParseString(src)
	if err != nil {
		errorln(err.Error())
		os.Exit(1)
	}

	fmt.Println(toml.StringJSON(root, 0, true))
}

// errorln writes a diagnostic line to stderr, red when stderr is a
// terminal.
func errorln(msg string) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		color.New(color.FgRed).Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
