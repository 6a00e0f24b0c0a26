package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/goifs/internal/config"
	"github.com/philipparndt/goifs/internal/logging"
	"github.com/philipparndt/goifs/internal/source"
	"github.com/philipparndt/goifs/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	cfg    = config.Default()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "goifs",
	Short: "Inspect, convert and preview polygon meshes",
	Long: `goifs loads STL (ASCII or binary) and OpenSCAD files into an indexed face set
and answers connectivity questions about it: faces, corners, their cycles and
the edges they form. Meshes can be re-exported as STL or rendered to a PNG
wireframe.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		level, _ := loaded.Log.SlogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		cfg = loaded
		logger = logging.Setup(cmd.ErrOrStderr(), level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func loader() *source.Loader {
	return &source.Loader{Log: logger, OpenSCAD: cfg.OpenSCAD.Binary}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
