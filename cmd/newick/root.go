package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

const (
	exitInvalidTree = 1
	exitUsage       = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// This is to keep all fields needed for the root command.
type rootCommand struct {
	gs  *globalState
	cmd *cobra.Command
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}
	c.cmd = &cobra.Command{
		Use:               "newick",
		Short:             "Check, print and summarize Newick trees",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetIn(gs.stdin)
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())

	c.cmd.AddCommand(
		getCmdCheck(gs),
		getCmdShow(gs),
		getCmdStats(gs),
	)
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&c.gs.flags.configFilePath, "config", "c",
		c.gs.flags.configFilePath, "TOML config file")
	flags.BoolVarP(&c.gs.flags.verbose, "verbose", "v", false,
		"enable debug logging")
	flags.BoolVar(&c.gs.flags.noColor, "no-color", false,
		"disable colored output")
	flags.StringVar(&c.gs.flags.logFormat, "log-format", "text",
		"log output format, one of text or json")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig(c.gs, cmd)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	c.gs.conf = conf
	setupLogger(c.gs.logger, conf)
	if conf.NoColor.Bool {
		color.NoColor = true
	}
	c.gs.logger.WithFields(logrus.Fields{
		"config": c.gs.flags.configFilePath,
		"format": conf.Format.String,
	}).Debug("Configuration loaded")
	return nil
}

func setupLogger(logger *logrus.Logger, conf Config) {
	level, err := logrus.ParseLevel(conf.LogLevel.String)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if conf.LogFormat.String == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: conf.NoColor.Bool,
		})
	}
}

// execute runs the command line in args and returns the exit code.
func execute(gs *globalState, args []string) int {
	c := newRootCommand(gs)
	c.cmd.SetArgs(args)
	err := c.cmd.Execute()
	if err == nil {
		return 0
	}

	code := exitUsage
	var eerr *exitError
	if errors.As(err, &eerr) {
		code = eerr.code
	}
	gs.logger.Error(err)
	return code
}
