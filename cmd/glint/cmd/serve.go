package cmd

import (
	"github.com/glint-ui/glint/cmd/glint/internal/web"
)

func init() {
	RegisterCommand(&Command{
		Name:  "serve",
		Short: "Serve the browser preview",
		Long: `Serve the browser preview of the intro animation.

The page at / plays the schedule in the browser; /timeline.json exposes
the computed choreography (reveal offsets, durations, guard windows) so
other front ends can play it too. Append ?reduced=1 for the
reduced-motion schedule.

The port comes from $PORT (a local .env is honored), default 8080.

Flags:
  --text NAME    Override the wordmark text
  --spring       Use the damped-spring reveal preset
  --reduced      Serve the reduced-motion schedule by default`,
		Usage: "glint serve [--text NAME] [--spring] [--reduced]",
		Run:   runServe,
	})
}

func runServe(args []string) error {
	resolved, err := resolveWithFlags(args)
	if err != nil {
		return err
	}
	return web.New(resolved).Run()
}
