// Command algokit lists the problems solved by this module and verifies
// their example cases.
//
//	algokit list [--category C]
//	algokit show SLUG
//	algokit run [--all] [SLUG...]
//
// Every command accepts --format text|yaml. Diagnostics go to stderr through
// logrus, as text or JSON lines (--log-format); the exit status is 1 when a command fails or a case does not pass.
package main

import (
	"errors"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algokit/catalog"
)

// Options are the flags shared by every command.
type Options struct {
	Format    string `long:"format" short:"f" description:"Output format" choice:"text" choice:"yaml" default:"text" env:"ALGOKIT_FORMAT"`
	LogLevel  string `long:"log-level" description:"Diagnostics level (debug, info, warn, error)" default:"info" env:"ALGOKIT_LOG_LEVEL"`
	LogFormat string `long:"log-format" description:"Diagnostics format" choice:"text" choice:"json" default:"text" env:"ALGOKIT_LOG_FORMAT"`
}

const formatYAML = "yaml"

var (
	log      = logrus.New()
	opts     Options
	registry = catalog.Default()

	stdout io.Writer = os.Stdout
)

// errCasesFailed is returned by run when at least one case did not pass.
var errCasesFailed = errors.New("cases failed")

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		level, err := logrus.ParseLevel(opts.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		if opts.LogFormat == "json" {
			log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			log.SetFormatter(&logrus.TextFormatter{})
		}
		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"list", "List problems", "List every problem, optionally restricted to one category.", &listCommand{}},
		{"show", "Show one problem", "Show the metadata and approaches of a problem.", &showCommand{}},
		{"run", "Verify example cases", "Run the example cases of the named problems, or of all problems with --all.", &runCommand{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			log.WithError(err).WithField("command", c.name).Fatal("cannot register command")
		}
	}

	return parser
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string) int {
	if _, err := newParser().ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
