package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/notepal/notepal/internal/config"
	"github.com/notepal/notepal/internal/offline"
	"github.com/notepal/notepal/internal/output"
)

// Shell command flags.
var (
	shellFlagOrigin string
	serveFlagAddr   string
)

// shellCmd manages the offline shell cache.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Manage the offline shell cache",
	Long: `Install, activate, and inspect the cached app shell that
'notepal serve' answers from when the network is gone.

Examples:
  notepal shell install
  notepal shell activate
  notepal shell status`,
}

// shellInstallCmd fetches and caches the shell assets.
var shellInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Fetch and cache all shell assets",
	Long: `Fetch every shell asset from the origin and store it under the
current cache version. All-or-nothing: if any asset fails, the
previous cache is left untouched.`,
	RunE: runShellInstall,
}

// shellActivateCmd drops caches from other versions.
var shellActivateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Drop cached assets from old cache versions",
	RunE:  runShellActivate,
}

// shellStatusCmd shows what is cached.
var shellStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cached shell assets",
	RunE:  runShellStatus,
}

// serveCmd serves the cached shell over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the app shell cache-first over HTTP",
	Long: `Serve the app shell, answering from the cache before the network.
When the network is down, page navigations fall back to the cached
shell page.

Examples:
  notepal serve
  notepal serve --addr 127.0.0.1:9000`,
	RunE: runServe,
}

func init() {
	shellCmd.PersistentFlags().StringVar(&shellFlagOrigin, "origin", "",
		"Shell origin (default from NOTEPAL_ORIGIN)")
	serveCmd.Flags().StringVar(&serveFlagAddr, "addr", "",
		"Listen address (default from NOTEPAL_LISTEN_ADDR)")
	serveCmd.Flags().StringVar(&shellFlagOrigin, "origin", "",
		"Shell origin (default from NOTEPAL_ORIGIN)")

	shellCmd.AddCommand(shellInstallCmd)
	shellCmd.AddCommand(shellActivateCmd)
	shellCmd.AddCommand(shellStatusCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
}

// newShellWorker builds an offline worker over the runtime cache repo.
func newShellWorker() (*offline.Worker, error) {
	origin := shellFlagOrigin
	if origin == "" {
		origin = config.Global.Offline.Origin
	}
	return offline.NewWorker(ctx.CacheRepo, origin)
}

func runShellInstall(cmd *cobra.Command, args []string) error {
	worker, err := newShellWorker()
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	cli.Muted("Fetching shell assets...")

	if err := worker.Install(cmd.Context()); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status":  "installed",
			"version": worker.Version(),
			"assets":  len(offline.ShellManifest()),
		})
	}

	cli.Success(fmt.Sprintf("Shell installed (%d assets, cache %s)",
		len(offline.ShellManifest()), worker.Version()))
	return nil
}

func runShellActivate(cmd *cobra.Command, args []string) error {
	worker, err := newShellWorker()
	if err != nil {
		return err
	}

	dropped, err := worker.Activate()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status":  "activated",
			"version": worker.Version(),
			"dropped": dropped,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Cache %s active; dropped %d stale entries",
		worker.Version(), dropped))
	return nil
}

func runShellStatus(cmd *cobra.Command, args []string) error {
	entries, err := ctx.CacheRepo.List(offline.CacheVersion)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		urls := make([]string, len(entries))
		for i, e := range entries {
			urls[i] = e.URL
		}
		return ctx.Formatter.JSON(map[string]interface{}{
			"version": offline.CacheVersion,
			"cached":  urls,
		})
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("Shell is not installed. Use 'notepal shell install'.")
		return nil
	}

	cli.Title("Cached shell assets (" + offline.CacheVersion + ")")
	rows := make([]output.TableRow, len(entries))
	for i, e := range entries {
		rows[i] = output.TableRow{Columns: []string{
			e.URL,
			fmt.Sprintf("%d", e.Status),
			fmt.Sprintf("%d B", len(e.Body)),
			output.FormatTimeShort(e.StoredAt),
		}}
	}
	cli.PrintTable([]string{"URL", "Status", "Size", "Cached"}, rows)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	worker, err := newShellWorker()
	if err != nil {
		return err
	}

	addr := serveFlagAddr
	if addr == "" {
		addr = config.Global.Offline.ListenAddr
	}

	cli := ctx.CLIFormatter()
	cli.Success("Serving shell on http://" + addr)
	cli.Muted("Press Ctrl+C to stop.")

	server := &http.Server{Addr: addr, Handler: worker}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
