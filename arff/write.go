package arff

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cdipaolo/relieff/dataset"
	"github.com/cdipaolo/relieff/relieff"
)

// Write serializes ds back into the tabular format, projected onto
// `retained` attributes followed by the class attribute, in that
// order. Passing every non-class attribute index in `retained` (in any
// order) yields a file equivalent to the input dataset modulo attribute
// order and numeric canonicalization.
func Write(w io.Writer, ds *dataset.Dataset, retained []int) error {
	columns := append(append([]int(nil), retained...), ds.ClassIndex)

	bw := newlineWriter{w}

	if _, err := fmt.Fprintf(w, "@RELATION %s\n\n", ds.Relation); err != nil {
		return ioFailWrap(err)
	}

	for _, col := range columns {
		attr := ds.Attributes[col]
		switch attr.Type {
		case dataset.Numeric:
			if err := bw.writef("@ATTRIBUTE %s NUMERIC\n", attr.Name); err != nil {
				return err
			}
		default:
			if err := bw.writef("@ATTRIBUTE %s {%s}\n", attr.Name, strings.Join(attr.Labels, ",")); err != nil {
				return err
			}
		}
	}

	if err := bw.writef("\n@DATA\n"); err != nil {
		return err
	}

	for _, inst := range ds.Instances {
		cells := make([]string, len(columns))
		for i, col := range columns {
			attr := ds.Attributes[col]
			cell := inst.Cells[col]
			if attr.Type == dataset.Numeric {
				cells[i] = strconv.FormatFloat(cell.Float, 'g', -1, 64)
			} else {
				cells[i] = attr.Labels[cell.Index]
			}
		}
		if err := bw.writef("%s\n", strings.Join(cells, ",")); err != nil {
			return err
		}
	}

	return nil
}

type newlineWriter struct {
	w io.Writer
}

func (n newlineWriter) writef(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(n.w, format, args...)
	if err != nil {
		return ioFailWrap(err)
	}
	return nil
}

func ioFailWrap(err error) error {
	return &relieff.Error{Kind: relieff.IOFailure, Msg: err.Error(), Cause: err}
}
