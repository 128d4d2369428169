package datfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/katalvlaran/hypergen/hypergraph"
)

// Ext is the required file extension.
const Ext = ".dat"

// ErrBadExtension indicates a path that does not end in Ext.
var ErrBadExtension = errors.New("datfile: path must end in " + Ext)

// ErrMalformedLine indicates a token that is not a non-negative integer.
var ErrMalformedLine = errors.New("datfile: malformed line")

// ErrNilHypergraph indicates a nil hypergraph passed to a writer.
var ErrNilHypergraph = errors.New("datfile: hypergraph is nil")

// Write emits one line per hyperedge in creation order.
func Write(w io.Writer, h *hypergraph.Hypergraph) error {
	if h == nil {
		return ErrNilHypergraph
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < h.NumHyperedges(); i++ {
		e, err := h.Hyperedge(i)
		if err != nil {
			return fmt.Errorf("datfile: Write: %w", err)
		}
		if _, err := bw.WriteString(e.String()); err != nil {
			return fmt.Errorf("datfile: Write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("datfile: Write: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFile writes h to path on fs, creating parent directories.
func WriteFile(fs afero.Fs, path string, h *hypergraph.Hypergraph) (err error) {
	if filepath.Ext(path) != Ext {
		return fmt.Errorf("datfile: WriteFile(%q): %w", path, ErrBadExtension)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("datfile: WriteFile(%q): %w", path, err)
		}
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("datfile: WriteFile(%q): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("datfile: WriteFile(%q): %w", path, cerr)
		}
	}()
	return Write(f, h)
}

// Read parses hyperedge lines. Blank lines are skipped; each returned
// hyperedge keeps the order the ids appear in.
func Read(r io.Reader) ([][]int, error) {
	var out [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		edge := make([]int, len(fields))
		for k, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("datfile: line %d: token %q: %w", line, tok, ErrMalformedLine)
			}
			edge[k] = v
		}
		out = append(out, edge)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("datfile: Read: %w", err)
	}
	return out, nil
}

// ReadFile parses the file at path on fs.
func ReadFile(fs afero.Fs, path string) ([][]int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datfile: ReadFile(%q): %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Load reads path and rebuilds a hypergraph over exactly the ids listed in
// it. Vertices in no hyperedge are not stored in the format, so the result
// may be sparse; call Relabel for contiguous ids.
func Load(fs afero.Fs, path string) (*hypergraph.Hypergraph, error) {
	edges, err := ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var ids []int
	for _, e := range edges {
		ids = append(ids, e...)
	}
	h, err := hypergraph.FromVertices(ids)
	if err != nil {
		return nil, fmt.Errorf("datfile: Load(%q): %w", path, err)
	}
	for _, e := range edges {
		if _, err := h.AddHyperedge(e...); err != nil {
			return nil, fmt.Errorf("datfile: Load(%q): %w", path, err)
		}
	}
	return h, nil
}
