package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	facesCount   int
	facesCorners bool
)

var facesCmd = &cobra.Command{
	Use:   "faces [file]",
	Short: "List the faces of a mesh",
	Long:  "Print each face with its degree and vertex indices. With --corners the corner cycle of every face is printed as well.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)

	facesCmd.Flags().IntVarP(&facesCount, "count", "n", 20, "Number of faces to display (0 for all)")
	facesCmd.Flags().BoolVar(&facesCorners, "corners", false, "Show corner cycles")
}

func runFaces(cmd *cobra.Command, args []string) error {
	sg, err := loader().Open(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	ifs, err := sg.SingleIndexedFaceSet()
	if err != nil {
		return err
	}

	fs := ifs.Faces()
	n := fs.FaceCount()
	if facesCount > 0 {
		n = min(n, facesCount)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Faces: %d, corners: %d, vertices: %d\n\n", fs.FaceCount(), fs.CornerCount(), fs.VertexCount())

	for f := 0; f < n; f++ {
		degree := fs.FaceDegree(f)
		vertices := make([]string, degree)
		for j := range degree {
			vertices[j] = strconv.Itoa(fs.FaceVertex(f, j))
		}
		fmt.Fprintf(out, "face %d  degree %d  vertices [%s]\n", f, degree, strings.Join(vertices, " "))

		if !facesCorners {
			continue
		}
		for j, c := range fs.Corners(f) {
			next := fs.NextCorner(c)
			fmt.Fprintf(out, "  [%d] corner %d  vertex %d  next %d (vertex %d)\n", j, c, fs.CornerVertex(c), next, fs.CornerVertex(next))
		}
	}
	if n < fs.FaceCount() {
		fmt.Fprintf(out, "... %d more\n", fs.FaceCount()-n)
	}
	return nil
}
