package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goifs/pkg/preview"
	"github.com/spf13/cobra"
)

var (
	previewWidth  int
	previewHeight int
	previewYaw    float64
	previewPitch  float64
)

var previewCmd = &cobra.Command{
	Use:   "preview [input] [output.png]",
	Short: "Render a wireframe PNG of a mesh",
	Args:  cobra.ExactArgs(2),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "Image width in pixels (default from config)")
	previewCmd.Flags().IntVar(&previewHeight, "height", 0, "Image height in pixels (default from config)")
	previewCmd.Flags().Float64Var(&previewYaw, "yaw", 0, "Camera yaw in degrees (default from config)")
	previewCmd.Flags().Float64Var(&previewPitch, "pitch", 0, "Camera pitch in degrees (default from config)")
}

func previewOptions(cmd *cobra.Command) (preview.Options, error) {
	p := cfg.Preview
	if cmd.Flags().Changed("width") {
		p.Width = previewWidth
	}
	if cmd.Flags().Changed("height") {
		p.Height = previewHeight
	}
	if cmd.Flags().Changed("yaw") {
		p.Yaw = previewYaw
	}
	if cmd.Flags().Changed("pitch") {
		p.Pitch = previewPitch
	}
	if p.Width <= 0 || p.Height <= 0 {
		return preview.Options{}, fmt.Errorf("image size must be positive, got %dx%d", p.Width, p.Height)
	}

	opts := preview.DefaultOptions()
	opts.Width, opts.Height = p.Width, p.Height
	opts.Yaw = mgl64.DegToRad(p.Yaw)
	opts.Pitch = mgl64.DegToRad(p.Pitch)
	return opts, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	opts, err := previewOptions(cmd)
	if err != nil {
		return err
	}

	sg, err := loader().Open(cmd.Context(), input)
	if err != nil {
		return err
	}
	ifs, err := sg.SingleIndexedFaceSet()
	if err != nil {
		return err
	}

	if err := preview.SavePNG(output, preview.Render(ifs, opts)); err != nil {
		return err
	}
	logger.Info("preview written", "output", output, "width", opts.Width, "height", opts.Height)
	return nil
}
