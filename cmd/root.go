package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sweep-scan/sweep/netutil"
	"github.com/sweep-scan/sweep/output"
	"github.com/sweep-scan/sweep/portspec"
	"github.com/sweep-scan/sweep/scan"
	"github.com/sweep-scan/sweep/version"
)

var verbose bool
var timeoutMS int = 1000
var workers int = 100
var portSelection string = "common"
var noColor bool
var versionRequested bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", verbose, "Report every probed port, not just open ones")
	rootCmd.PersistentFlags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Connection timeout in MS")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", workers, "Parallel connection attempts")
	rootCmd.PersistentFlags().StringVarP(&portSelection, "ports", "p", portSelection, "Ports to scan: a preset (common, web, database, mail, remote), 'all', a range e.g. 8080-8090, or a comma separated list")
	rootCmd.PersistentFlags().BoolVarP(&noColor, "no-color", "", noColor, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   "sweep [target]",
	Short: "Sweep is a concurrent TCP port scanner",
	Long:  `A concurrent TCP connect scanner for finding open ports and the services behind them.`,
	Run: func(cmd *cobra.Command, args []string) {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Printf("sweep %s\n", v)
			return
		}

		if noColor {
			color.NoColor = true
		}

		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		if len(args) == 0 {
			fmt.Println("Please specify a target")
			os.Exit(1)
		}

		ip, err := netutil.ResolveTarget(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ports, err := portspec.Parse(portSelection)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		scanner, err := scan.NewScanner(workers, time.Millisecond*time.Duration(timeoutMS))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		console := output.NewConsole(os.Stdout, verbose)
		scanner.OnResult = console.Result
		scanner.OnProgress = console.Progress

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		console.Banner(ip.String(), len(ports))

		startTime := time.Now()

		open, err := scanner.Scan(ctx, ip, ports)
		console.EndProgress()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if ctx.Err() != nil {
			console.Interrupted()
		}

		console.Summary(ip.String(), open)

		fmt.Printf("\nScan complete in %s.\n", time.Since(startTime).String())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
