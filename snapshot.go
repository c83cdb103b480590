package lookuptable

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Snapshot format constants.
const (
	// snapshotMagic identifies a table snapshot stream and pins its
	// layout version. Bump the trailing digit on incompatible changes.
	snapshotMagic = "GOLUTBL1"

	// maxSnapshotDims bounds the dimension count accepted when
	// decoding, guarding allocation against corrupt headers. 2^64
	// corners are unusable long before this.
	maxSnapshotDims = 64

	// maxSnapshotElems bounds any single decoded array length.
	maxSnapshotElems = 1 << 28
)

// WriteSnapshot writes the table's axes and values to w as a
// compressed, versioned binary snapshot that ReadSnapshot restores.
// Fails with ErrInvalidTable when the table holds no data.
func (t *Table) WriteSnapshot(w io.Writer) error {
	axes, values := t.grid.Snapshot()
	if axes == nil {
		return ErrInvalidTable
	}

	if _, err := io.WriteString(w, snapshotMagic); err != nil {
		return fmt.Errorf("writing snapshot magic: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating snapshot compressor: %w", err)
	}

	if err := writeSnapshotBody(zw, axes, values); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	return nil
}

func writeSnapshotBody(w io.Writer, axes [][]float64, values []float64) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(axes))); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}
	for i, axis := range axes {
		if err := binary.Write(w, binary.LittleEndian, uint64(len(axis))); err != nil {
			return fmt.Errorf("writing axis %d length: %w", i, err)
		}
		if err := binary.Write(w, binary.LittleEndian, axis); err != nil {
			return fmt.Errorf("writing axis %d: %w", i, err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(values))); err != nil {
		return fmt.Errorf("writing value count: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, values); err != nil {
		return fmt.Errorf("writing values: %w", err)
	}
	return nil
}

// ReadSnapshot restores a table from a snapshot previously written by
// WriteSnapshot. The decoded data passes through the same validation
// as Populate, so a snapshot cannot smuggle in an invalid table.
func ReadSnapshot(r io.Reader) (*Table, error) {
	magic := make([]byte, len(snapshotMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: missing magic: %w", ErrBadSnapshot, err)
	}
	if !bytes.Equal(magic, []byte(snapshotMagic)) {
		return nil, fmt.Errorf("%w: unrecognized magic %q", ErrBadSnapshot, magic)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	defer zr.Close()

	axes, values, err := readSnapshotBody(zr)
	if err != nil {
		return nil, err
	}

	t := New()
	if err := t.Populate(axes, values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	return t, nil
}

func readSnapshotBody(r io.Reader) (axes [][]float64, values []float64, err error) {
	var dims uint32
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return nil, nil, fmt.Errorf("%w: reading header: %w", ErrBadSnapshot, err)
	}
	if dims < 2 || dims > maxSnapshotDims {
		return nil, nil, fmt.Errorf("%w: implausible dimension count %d", ErrBadSnapshot, dims)
	}

	axes = make([][]float64, dims)
	for i := range axes {
		axes[i], err = readFloatArray(r)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: reading axis %d: %w", ErrBadSnapshot, i, err)
		}
	}
	values, err = readFloatArray(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading values: %w", ErrBadSnapshot, err)
	}
	return axes, values, nil
}

func readFloatArray(r io.Reader) ([]float64, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	if n > maxSnapshotElems {
		return nil, fmt.Errorf("implausible array length %d", n)
	}
	data := make([]float64, n)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	return data, nil
}
