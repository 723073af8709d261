// cmd/spackle/check.go

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vuul/spackle-ssh/internal/models"
	"github.com/vuul/spackle-ssh/internal/netcheck"
	"github.com/vuul/spackle-ssh/internal/parse"
)

var (
	checkPort     string
	checkProtocol string
	checkTimeout  time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check <host>",
	Short: "Probe DNS resolution and TCP reachability for a host",
	Long: `Runs the same advisory pre-launch validation 'connect' performs:
best-effort DNS resolution and a TCP connect probe, each under a
bounded timeout. The result is informational; it never blocks a
launch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proto, err := models.ParseProtocol(checkProtocol)
		if err != nil {
			return err
		}
		d, err := parse.Parse(args[0], checkPort, proto)
		if err != nil {
			return err
		}

		v := netcheck.NewValidator()
		v.Timeout = checkTimeout
		res := v.Check(cmd.Context(), d)

		fmt.Printf("host:       %s\n", d.Host)
		fmt.Printf("resolvable: %v\n", res.Resolvable)
		if res.Resolvable {
			fmt.Printf("address:    %s\n", res.ResolvedAddr)
		}
		fmt.Printf("reachable:  %v\n", res.Reachable)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkPort, "port", "", "Port to probe (defaults to the protocol port)")
	checkCmd.Flags().StringVar(&checkProtocol, "protocol", "ssh", "Protocol: ssh or telnet")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", netcheck.DefaultTimeout, "Per-step probe timeout")
}
