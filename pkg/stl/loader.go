// Package stl reads and writes STL files as wrl scene graphs holding a single
// Shape with an IndexedFaceSet.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goifs/pkg/wrl"
)

const (
	binaryHeaderSize = 80
	sniffSize        = 512
)

var utf8BOM = []byte("\xef\xbb\xbf")

// LoadFile reads an ASCII or binary STL file
func LoadFile(filename string) (*wrl.SceneGraph, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	sg, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}
	sg.URL = filename
	return sg, nil
}

// Load reads an STL stream, detecting ASCII or binary encoding
func Load(r io.Reader) (*wrl.SceneGraph, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	if isASCII(head) {
		// Editors may prepend a byte order mark to text files
		if bytes.HasPrefix(head, utf8BOM) {
			br.Discard(len(utf8BOM))
		}
		return loadASCII(br)
	}
	return loadBinary(br)
}

// isASCII reports whether the stream starts with "solid", after an optional
// UTF-8 byte order mark, and the sniffed bytes hold no control characters. Binary headers may start with "solid" as well,
// but the triangle count and float data that follow contain them.
func isASCII(head []byte) bool {
	text := bytes.TrimPrefix(head, utf8BOM)
	if !bytes.HasPrefix(bytes.TrimLeft(text, " \t\r\n"), []byte("solid")) {
		return false
	}
	for _, b := range head {
		if b < 0x20 && b != '\n' && b != '\r' && b != '\t' {
			return false
		}
	}
	return true
}

// newSolid creates the scene graph layout shared by both encodings
func newSolid(name string) (*wrl.SceneGraph, *wrl.IndexedFaceSet) {
	ifs := wrl.NewIndexedFaceSet(name)
	ifs.NormalPerVertex = false

	sg := wrl.NewSceneGraph()
	sg.AddChild(wrl.NewShape(ifs))
	return sg, ifs
}

// addFacet appends one triangle with its own three coordinates
func addFacet(ifs *wrl.IndexedFaceSet, normal [3]float32, verts [3][3]float32) {
	base := ifs.NumberOfCoords()
	ifs.Normal = append(ifs.Normal, normal[:]...)
	for i, v := range verts {
		ifs.Coord = append(ifs.Coord, v[:]...)
		ifs.CoordIndex = append(ifs.CoordIndex, base+i)
	}
	ifs.CoordIndex = append(ifs.CoordIndex, -1)
}

func loadASCII(r io.Reader) (*wrl.SceneGraph, error) {
	tkn := newTokenizer(r)
	fail := func(expected string) error {
		if tkn.err != nil {
			return fmt.Errorf("error reading ASCII STL: %w", tkn.err)
		}
		return &ParseError{Line: tkn.line, Expected: expected, Got: tkn.tok}
	}

	if !tkn.expecting("solid") {
		return nil, fail("'solid'")
	}
	sg, ifs := newSolid(tkn.restOfLine())

	if !tkn.get() {
		return nil, fail("'facet' or 'endsolid'")
	}
	for {
		switch {
		case tkn.equals("facet"):
			if err := loadFacet(tkn, ifs, fail); err != nil {
				return nil, err
			}
			if !tkn.get() {
				if tkn.err != nil {
					return nil, fmt.Errorf("error reading ASCII STL: %w", tkn.err)
				}
				return sg, nil
			}
		case tkn.equals("endsolid"):
			return sg, nil
		default:
			return nil, fail("'facet' or 'endsolid'")
		}
	}
}

// loadFacet parses one facet block; the current token is "facet"
func loadFacet(tkn *tokenizer, ifs *wrl.IndexedFaceSet, fail func(string) error) error {
	var normal [3]float32
	var verts [3][3]float32

	if !tkn.expecting("normal") {
		return fail("'normal'")
	}
	for i := range normal {
		f, ok := tkn.getFloat()
		if !ok {
			return fail("float")
		}
		normal[i] = f
	}

	if !tkn.expecting("outer") || !tkn.expecting("loop") {
		return fail("'outer loop'")
	}
	for i := range verts {
		if !tkn.expecting("vertex") {
			return fail("'vertex'")
		}
		for k := range verts[i] {
			f, ok := tkn.getFloat()
			if !ok {
				return fail("float")
			}
			verts[i][k] = f
		}
	}
	if !tkn.expecting("endloop") {
		return fail("'endloop'")
	}
	if !tkn.expecting("endfacet") {
		return fail("'endfacet'")
	}

	addFacet(ifs, normal, verts)
	return nil
}

// binaryFacet is the 50 byte little-endian facet record
type binaryFacet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

func loadBinary(r io.Reader) (*wrl.SceneGraph, error) {
	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	name := string(bytes.TrimSpace(bytes.TrimRight(header, "\x00")))

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	sg, ifs := newSolid(name)
	// Preallocate for at most 64K facets; a corrupt count must not size the slices
	hint := int(min(count, 1<<16))
	ifs.Coord = make([]float32, 0, 9*hint)
	ifs.Normal = make([]float32, 0, 3*hint)
	ifs.CoordIndex = make([]int, 0, 4*hint)

	var rec binaryFacet
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		addFacet(ifs, rec.Normal, rec.Vertices)
	}
	return sg, nil
}
