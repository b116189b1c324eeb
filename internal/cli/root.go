// Package cli es la herramienta de desarrollo: corre los engines contra el
// set de demo sin levantar el servidor.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"pet-finder/internal/platform/clock"
)

type options struct {
	now string
}

// RootCommand arma el comando raíz con todos los subcomandos.
func RootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "petfinder",
		Short:         "pet-finder dev tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.now, "now", "", `reference time "YYYY-MM-DDTHH:MM" (default: current time)`)

	rootCmd.AddCommand(
		rankCommand(opts),
		zoneCommand(opts),
		riskCommand(opts),
		seedCommand(),
	)
	return rootCmd
}

// clock devuelve el reloj fijo de --now o el real.
func (o *options) clock() (clock.Now, error) {
	if o.now == "" {
		return time.Now, nil
	}
	t, ok := clock.Parse(o.now, time.Local)
	if !ok {
		return nil, fmt.Errorf("invalid --now %q", o.now)
	}
	return clock.Fixed(t), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
