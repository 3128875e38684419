package dispatch

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// CommandOpener delegates to the host's file association and print spooler
// through external commands.
type CommandOpener struct {
	run   Runner
	open  func(path string) []string
	print func(path string) []string
}

// NewSystemOpener returns the opener for the running operating system.
func NewSystemOpener() *CommandOpener {
	return NewCommandOpener(runtime.GOOS, execRunner)
}

// NewCommandOpener returns the opener for goos. Actions the platform has no
// command for fail with ErrUnsupported.
func NewCommandOpener(goos string, run Runner) *CommandOpener {
	o := &CommandOpener{run: run}

	switch goos {
	case "windows":
		o.open = func(p string) []string { return []string{"cmd", "/c", "start", "", p} }
		o.print = func(p string) []string {
			return []string{
				"powershell", "-NoProfile", "-NonInteractive", "-Command",
				"Start-Process -FilePath " + psQuote(p) + " -Verb Print",
			}
		}
	case "darwin":
		o.open = func(p string) []string { return []string{"open", p} }
		o.print = func(p string) []string { return []string{"lp", p} }
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		o.open = func(p string) []string { return []string{"xdg-open", p} }
		o.print = func(p string) []string { return []string{"lp", p} }
	}

	return o
}

func (o *CommandOpener) Open(ctx context.Context, path string) error {
	return o.exec(ctx, o.open, path)
}

func (o *CommandOpener) Print(ctx context.Context, path string) error {
	return o.exec(ctx, o.print, path)
}

func (o *CommandOpener) exec(ctx context.Context, argv func(string) []string, path string) error {
	if argv == nil {
		return ErrUnsupported
	}

	args := argv(path)

	out, err := o.run(ctx, args[0], args[1:]...)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("running %s: %w: %s", args[0], err, msg)
		}

		return fmt.Errorf("running %s: %w", args[0], err)
	}

	return nil
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
