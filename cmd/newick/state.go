package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// globalState holds everything a command touches outside of its own flags,
// so that tests can swap in an in-memory filesystem and buffers.
type globalState struct {
	fs     afero.Fs
	env    map[string]string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *logrus.Logger

	flags globalFlags
	conf  Config
}

type globalFlags struct {
	configFilePath string
	verbose        bool
	noColor        bool
	logFormat      string
}

func newGlobalState(
	fs afero.Fs, env map[string]string, stdin io.Reader, stdout, stderr io.Writer,
) *globalState {
	logger := &logrus.Logger{
		Out:       stderr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
	return &globalState{
		fs:     fs,
		env:    env,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		flags: globalFlags{
			configFilePath: env["NEWICK_CONFIG"],
		},
	}
}

func buildEnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}
