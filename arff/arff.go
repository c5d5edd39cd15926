// Package arff reads and writes the ARFF-derived tabular dataset format:
// a @RELATION name, a block of @ATTRIBUTE declarations (NUMERIC/REAL or
// a brace-enclosed nominal label list), and an @DATA section of
// comma-separated rows. It is a collaborator of the evaluator, not part
// of it — relieff.Evaluator never imports this package, only the CLI
// does.
package arff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cdipaolo/relieff/dataset"
	"github.com/cdipaolo/relieff/relieff"
)

// Parse reads a tabular file from r and builds a Dataset, resolving the
// class attribute by case-insensitive match against className. It fails
// with a relieff.Error of kind BadSchema if no attribute matches
// className, and BadData (carrying the offending line number) if a
// nominal cell doesn't match any declared label.
func Parse(r io.Reader, className string) (*dataset.Dataset, error) {
	p := &parser{scan: bufio.NewScanner(r)}
	p.scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return p.run(className)
}

type parser struct {
	scan *bufio.Scanner
	line int
}

func (p *parser) run(className string) (*dataset.Dataset, error) {
	var relation string
	var builder *dataset.Builder
	inData := false

	for p.scan.Scan() {
		p.line++
		raw := p.scan.Text()
		text := stripComment(raw)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if inData {
			if builder == nil {
				return nil, ioError("arff: @DATA before any @ATTRIBUTE")
			}
			if err := p.parseInstance(builder, text); err != nil {
				return nil, err
			}
			continue
		}

		upper := strings.ToUpper(text)
		switch {
		case strings.HasPrefix(upper, "@RELATION"):
			relation = strings.TrimSpace(text[len("@RELATION"):])
			builder = dataset.NewBuilder(relation)
		case strings.HasPrefix(upper, "@ATTRIBUTE"):
			if builder == nil {
				return nil, ioError("arff: @ATTRIBUTE before @RELATION")
			}
			if err := p.parseAttribute(builder, text); err != nil {
				return nil, err
			}
		case strings.HasPrefix(upper, "@DATA"):
			if builder == nil {
				return nil, ioError("arff: @DATA before @RELATION")
			}
			inData = true
		default:
			return nil, ioError(fmt.Sprintf("arff: unrecognized line: %q", raw))
		}
	}
	if err := p.scan.Err(); err != nil {
		return nil, &relieff.Error{Kind: relieff.IOFailure, Msg: err.Error(), Cause: err}
	}
	if builder == nil {
		return nil, ioError("arff: empty file, no @RELATION found")
	}

	if !builder.ClassIndexByName(className) {
		return nil, &relieff.Error{Kind: relieff.BadSchema, Msg: fmt.Sprintf("no attribute named %q", className)}
	}

	return builder.Build(), nil
}

// parseAttribute parses a "@ATTRIBUTE name TYPE" line, where TYPE is
// NUMERIC, REAL, or a brace-enclosed, comma-separated label list.
func (p *parser) parseAttribute(b *dataset.Builder, line string) error {
	rest := strings.TrimSpace(line[len("@ATTRIBUTE"):])

	braceIdx := strings.IndexByte(rest, '{')
	if braceIdx >= 0 {
		name := strings.TrimSpace(rest[:braceIdx])
		closeIdx := strings.IndexByte(rest, '}')
		if closeIdx < braceIdx {
			return p.badData("malformed nominal attribute declaration")
		}
		labelsRaw := rest[braceIdx+1 : closeIdx]
		var labels []string
		for _, tok := range strings.Split(labelsRaw, ",") {
			labels = append(labels, strings.TrimSpace(tok))
		}
		b.AddAttribute(dataset.Attribute{Name: name, Type: dataset.Nominal, Labels: labels})
		return nil
	}

	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return p.badData("malformed attribute declaration")
	}
	name := fields[0]
	typ := strings.ToUpper(fields[1])
	if typ != "NUMERIC" && typ != "REAL" {
		return p.badData(fmt.Sprintf("unknown attribute type %q", fields[1]))
	}
	b.AddAttribute(dataset.Attribute{Name: name, Type: dataset.Numeric})
	return nil
}

// parseInstance parses one comma-separated @DATA row into cells aligned
// with b's declared attributes.
func (p *parser) parseInstance(b *dataset.Builder, line string) error {
	fields := splitCSVLine(line)
	if len(fields) != b.NumAttributes() {
		return p.badData(fmt.Sprintf("expected %d cells, got %d", b.NumAttributes(), len(fields)))
	}

	cells := make([]dataset.Cell, len(fields))
	for i, raw := range fields {
		raw = strings.TrimSpace(raw)
		cell, err := p.parseCell(b, i, raw)
		if err != nil {
			return err
		}
		cells[i] = cell
	}
	return b.AddInstance(dataset.Instance{Cells: cells})
}

func (p *parser) parseCell(b *dataset.Builder, attrIndex int, raw string) (dataset.Cell, error) {
	attr := attributeAt(b, attrIndex)
	if attr.Type == dataset.Numeric {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dataset.Cell{}, p.badData(fmt.Sprintf("attribute %q: invalid numeric value %q", attr.Name, raw))
		}
		return dataset.Cell{Float: v}, nil
	}
	idx, ok := attr.LabelIndex(raw)
	if !ok {
		return dataset.Cell{}, p.badData(fmt.Sprintf("attribute %q: value %q does not match any declared label", attr.Name, raw))
	}
	return dataset.Cell{Index: idx}, nil
}

func (p *parser) badData(msg string) error {
	return &relieff.Error{Kind: relieff.BadData, Line: p.line, Msg: msg}
}

func ioError(msg string) error {
	return &relieff.Error{Kind: relieff.IOFailure, Msg: msg}
}

// attributeAt returns the attribute declared at index i of b's
// in-progress schema, via Builder.AttributeAt.
func attributeAt(b *dataset.Builder, i int) dataset.Attribute {
	return b.AttributeAt(i)
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '%'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// splitCSVLine splits a data row on commas. The format doesn't allow
// quoted commas within a cell (attribute values are bare tokens or
// numbers), so a plain split suffices.
func splitCSVLine(line string) []string {
	return strings.Split(line, ",")
}
