package main

import (
	"fmt"

	"github.com/philipparndt/goifs/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a mesh",
	Long:  "Show face, corner and vertex counts, face degrees, normal binding, dimensions, surface area and edge statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	sg, err := loader().Open(cmd.Context(), filename)
	if err != nil {
		return err
	}
	ifs, err := sg.SingleIndexedFaceSet()
	if err != nil {
		return err
	}

	result := analysis.Analyze(ifs)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Mesh Information")
	fmt.Fprintln(out, "================")
	if result.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", result.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Connectivity:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Faces: %d\n", result.FaceCount)
	fmt.Fprintf(out, "  Corners: %d (%d sentinel)\n", result.CornerCount, result.UnusedCorners)
	fmt.Fprintf(out, "  Triangle mesh: %t\n", result.TriangleMesh)
	fmt.Fprintf(out, "  Normal binding: %s\n", result.NormalBinding)
	for _, d := range result.SortedDegrees() {
		fmt.Fprintf(out, "  Faces with %d corners: %d\n", d, result.Degrees[d])
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Bounding Box:")
	if result.BoundingBox.IsEmpty() {
		fmt.Fprintln(out, "  (empty)")
	} else {
		fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
		fmt.Fprintf(out, "  Size: %s\n", analysis.FormatVector(result.Dimensions))
		fmt.Fprintf(out, "  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
		fmt.Fprintf(out, "  Volume: %.6f cubic units\n", result.BoundingVolume)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Surface:")
	fmt.Fprintf(out, "  Area: %.6f square units\n", result.SurfaceArea)
	fmt.Fprintf(out, "  Centroid: %s\n", analysis.FormatVector(result.SurfaceCentroid))
	fmt.Fprintf(out, "  Degenerate faces: %d\n", result.DegenerateFaces)
	fmt.Fprintf(out, "  Flipped normals: %d\n\n", result.FlippedNormals)

	fmt.Fprintln(out, "Edges:")
	fmt.Fprintf(out, "  Directed: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Unique: %d\n", result.UniqueEdgeCount)
	fmt.Fprintf(out, "  Boundary: %d\n", result.BoundaryEdgeCount)
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)
	return nil
}
