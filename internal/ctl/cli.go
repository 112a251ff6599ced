// Package ctl implements the primectl command tree. Engine commands (count,
// nth, backends) run in-process; server commands (status, health) talk to a
// running primed daemon over HTTP.
package ctl

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"primed/internal/engine"
	"primed/pkg/types"
)

// Config carries the persistent CLI settings.
type Config struct {
	Addr string
}

// defaultAddr honors the same env var as the daemon's listen flag.
func defaultAddr() string {
	if v := os.Getenv("PRIMED_ADDR"); v != "" {
		if v[0] == ':' {
			return "http://127.0.0.1" + v
		}
		return v
	}
	return "http://127.0.0.1:8080"
}

// BuildRootCmd constructs the Cobra command tree.
func BuildRootCmd() *cobra.Command {
	cfg := &Config{Addr: defaultAddr()}
	root := &cobra.Command{
		Use:           "primectl",
		Short:         "Prime engine utilities: local computation and daemon queries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Base URL of a running primed daemon (defaults PRIMED_ADDR or http://127.0.0.1:8080)")

	countCmd := &cobra.Command{
		Use:     "count <limit>",
		Short:   "Count primes <= limit using the local engine",
		Example: "  primectl count 1000000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseInt(args[0])
			if err != nil {
				return fmt.Errorf("limit: %w", err)
			}
			if limit < 0 {
				return fmt.Errorf("limit must be non-negative, got %d", limit)
			}
			fmt.Fprintln(cmd.OutOrStdout(), engine.CountPrimes(limit))
			return nil
		},
	}

	nthCmd := &cobra.Command{
		Use:     "nth <n>",
		Short:   "Find the nth prime (1-indexed) using the local engine",
		Example: "  primectl nth 1000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return fmt.Errorf("n: %w", err)
			}
			p, err := engine.NthPrime(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "Show backend availability and the local selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := engine.Resolve()
			for _, av := range sel.Trail {
				marker := " "
				if av.Kind == sel.Kind {
					marker = "*"
				}
				state := "available"
				if !av.Available {
					state = "unavailable"
				}
				line := fmt.Sprintf("%s %-8s %s", marker, av.Kind, state)
				if av.Reason != "" {
					line += " (" + av.Reason + ")"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if sel.Disabled {
				fmt.Fprintln(cmd.OutOrStdout(), "acceleration disabled by configuration")
			}
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Fetch /status from a running daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			var st types.StatusResponse
			if err := getJSON(cfg.Addr+"/status", &st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backend: %s\n", st.Backend)
			fmt.Fprintf(cmd.OutOrStdout(), "accel disabled: %v\n", st.AccelDisabled)
			fmt.Fprintf(cmd.OutOrStdout(), "uptime: %ds\n", st.UptimeSeconds)
			for _, b := range st.Backends {
				marker := " "
				if b.Selected {
					marker = "*"
				}
				line := fmt.Sprintf("%s %-8s available=%v", marker, b.Kind, b.Available)
				if b.Reason != "" {
					line += " (" + b.Reason + ")"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check /healthz on a running daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := getText(cfg.Addr + "/healthz")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})

	root.AddCommand(countCmd, nthCmd, backendsCmd, statusCmd, healthCmd, completionCmd)
	return root
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return v, nil
}
