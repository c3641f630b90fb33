package cmd

import (
	"fmt"
	"os"

	"github.com/glint-ui/glint/cmd/glint/internal/config"
	"github.com/glint-ui/glint/cmd/glint/internal/tui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Play the intro animation in the terminal",
		Long: `Play the intro animation full-screen in the terminal.

Click anywhere, or press Space or Enter, to toggle the content panel.
Press r to replay the wordmark reveal. Esc or Ctrl+C quits.

Flags:
  --text NAME    Override the wordmark text
  --spring       Use the damped-spring reveal preset
  --reduced      Skip transforms, render end states immediately
  --sound        Chime on toggle`,
		Usage: "glint run [--text NAME] [--spring] [--reduced] [--sound]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	resolved, err := resolveWithFlags(args)
	if err != nil {
		return err
	}

	sound := hasFlag(args, "--sound")
	app, err := tui.New(tui.Options{
		Wordmark:   resolved.Wordmark,
		Disclosure: resolved.Disclosure,
		Sound:      sound,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer app.Close()

	app.Run()
	return nil
}

// resolveWithFlags loads glint.yaml and applies the shared CLI overrides.
func resolveWithFlags(args []string) (*config.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if text, ok := flagValue(args, "--text"); ok {
		cfg.Text = text
	}
	if hasFlag(args, "--spring") {
		cfg.Motion = "spring"
	}
	if hasFlag(args, "--reduced") {
		cfg.ReducedMotion = true
	}

	return cfg.Resolve()
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

func flagValue(args []string, name string) (string, bool) {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}
