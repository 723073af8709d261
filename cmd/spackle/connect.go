// cmd/spackle/connect.go

package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vuul/spackle-ssh/internal/launch"
	"github.com/vuul/spackle-ssh/internal/models"
	"github.com/vuul/spackle-ssh/internal/netcheck"
	"github.com/vuul/spackle-ssh/internal/parse"
)

var (
	connHost      string
	connPort      string
	connProtocol  string
	connDryRun    bool
	connStrict    bool
	connSkipCheck bool
	connTimeout   time.Duration
)

var connectCmd = &cobra.Command{
	Use:   "connect [profile]",
	Short: "Launch a session in a new terminal window",
	Long: `Launches an SSH or Telnet session inside a new terminal window,
either from a saved profile or from --host/--port/--protocol flags.
Reachability is checked first in the background; a failure warns but
does not block unless --strict is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store()

		var d models.ConnectionDescriptor
		var opts models.TerminalOptions
		switch {
		case len(args) == 1:
			p, err := st.Get(args[0])
			if err != nil {
				return err
			}
			d = p.Descriptor()
			opts = p.Options()
		case connHost != "":
			proto, err := models.ParseProtocol(connProtocol)
			if err != nil {
				return err
			}
			if d, err = parse.Parse(connHost, connPort, proto); err != nil {
				return err
			}
			// Ad-hoc connections start from the stored defaults.
			if opts, err = st.Defaults(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("either a profile name or --host is required")
		}

		if !connSkipCheck {
			v := netcheck.NewValidator()
			v.Timeout = connTimeout
			checker := netcheck.NewChecker(v)
			checker.Submit(cmd.Context(), d)

			select {
			case outcome := <-checker.Results():
				res := outcome.Result
				if !res.Resolvable {
					if connStrict {
						return fmt.Errorf("unknown host: %s", d.Host)
					}
					logrus.Warnf("unknown host %s, launching anyway", d.Host)
				} else if !res.Reachable {
					if connStrict {
						return fmt.Errorf("host %s is not reachable", d.Addr())
					}
					logrus.Warnf("%s not reachable, launching anyway", d.Addr())
				}
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		}

		strategy, err := launch.DetectStrategy(runtime.GOOS)
		if err != nil {
			return err
		}
		plan, err := launch.NewPlanner(strategy).Plan(d, opts)
		if err != nil {
			return err
		}

		if connDryRun {
			fmt.Println(plan.Executable + " " + strings.Join(plan.Args, " "))
			return nil
		}

		handle, err := launch.Launch(plan)
		if err != nil {
			return err
		}
		fmt.Printf("Launched %s (pid %d)\n", plan.Title, handle.Pid)
		return nil
	},
}

func init() {
	connectCmd.Flags().StringVar(&connHost, "host", "", "Hostname, optionally user@host")
	connectCmd.Flags().StringVar(&connPort, "port", "", "Port (defaults to the protocol port)")
	connectCmd.Flags().StringVar(&connProtocol, "protocol", "ssh", "Protocol: ssh or telnet")
	connectCmd.Flags().BoolVar(&connDryRun, "dry-run", false, "Print the launch command instead of running it")
	connectCmd.Flags().BoolVar(&connStrict, "strict", false, "Refuse to launch when the host is unresolvable or unreachable")
	connectCmd.Flags().BoolVar(&connSkipCheck, "skip-check", false, "Skip the reachability check")
	connectCmd.Flags().DurationVar(&connTimeout, "timeout", netcheck.DefaultTimeout, "Per-step reachability timeout")
}
