package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/goifs/pkg/stl"
	"github.com/philipparndt/goifs/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	convertBinary   bool
	convertPolygons bool
	convertWatch    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output.stl]",
	Short: "Convert a mesh to STL",
	Long: `Load an STL or OpenSCAD file and write it as ASCII or binary STL.
With --watch the input and, for OpenSCAD, every used or included file is
watched and the output is rewritten after each change.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&convertBinary, "binary", "b", false, "Write binary STL")
	convertCmd.Flags().BoolVar(&convertPolygons, "polygons", false, "Accept faces with more than three corners")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "Reconvert when the input changes")
}

func convertOptions(cmd *cobra.Command) stl.SaveOptions {
	opts := stl.SaveOptions{
		Binary:        cfg.Convert.Binary,
		AllowPolygons: cfg.Convert.AllowPolygons,
	}
	if cmd.Flags().Changed("binary") {
		opts.Binary = convertBinary
	}
	if cmd.Flags().Changed("polygons") {
		opts.AllowPolygons = convertPolygons
	}
	return opts
}

func convertOnce(ctx context.Context, input, output string, opts stl.SaveOptions) error {
	sg, err := loader().Open(ctx, input)
	if err != nil {
		return err
	}
	if err := stl.SaveFile(output, sg, opts); err != nil {
		return err
	}
	logger.Info("converted", "input", input, "output", output, "binary", opts.Binary)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	opts := convertOptions(cmd)

	if err := convertOnce(cmd.Context(), input, output, opts); err != nil {
		if !convertWatch {
			return err
		}
		logger.Error("conversion failed", "err", err)
	}
	if !convertWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fw, err := watcher.New(cfg.Convert.Debounce(), logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	files, err := loader().WatchList(input)
	if err != nil {
		return err
	}
	err = fw.Watch(files, func(path string) {
		logger.Info("change detected", "path", path)
		if err := convertOnce(ctx, input, output, opts); err != nil {
			logger.Error("conversion failed", "err", err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %d file(s), press Ctrl+C to stop\n", len(files))
	if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
