package cmd

import (
	"encoding/json"
	"os"

	"github.com/glint-ui/glint/cmd/glint/internal/web"
)

func init() {
	RegisterCommand(&Command{
		Name:  "export",
		Short: "Print the computed schedule as JSON",
		Long: `Print the computed animation schedule as JSON on stdout.

The output matches /timeline.json from "glint serve": every timeline
step with its track, start offset, duration, and value range, plus the
caret retire time and hint delay.

Flags:
  --text NAME    Override the wordmark text
  --spring       Use the damped-spring reveal preset
  --reduced      Export the reduced-motion schedule`,
		Usage: "glint export [--text NAME] [--spring] [--reduced]",
		Run:   runExport,
	})
}

func runExport(args []string) error {
	resolved, err := resolveWithFlags(args)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(web.BuildSchedule(resolved, hasFlag(args, "--reduced")))
}
