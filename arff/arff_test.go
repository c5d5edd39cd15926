package arff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdipaolo/relieff/dataset"
	"github.com/cdipaolo/relieff/relieff"
)

const sample = `% a comment line
@RELATION weather

@ATTRIBUTE Outlook {sunny,rainy}
@ATTRIBUTE Temperature NUMERIC
@ATTRIBUTE Class {yes,no}

@DATA
sunny,72,yes
rainy,65,no
`

func TestParseBasic(t *testing.T) {
	ds, err := Parse(strings.NewReader(sample), "Class")
	assert.NoError(t, err)
	assert.Equal(t, "weather", ds.Relation)
	assert.Equal(t, 2, ds.ClassIndex)
	assert.Len(t, ds.Instances, 2)
	assert.Equal(t, 72.0, ds.Instances[0].Cells[1].Float)
	assert.Equal(t, 0, ds.Instances[0].Cells[0].Index)
}

func TestParseCaseInsensitiveClassMatch(t *testing.T) {
	ds, err := Parse(strings.NewReader(sample), "class")
	assert.NoError(t, err)
	assert.Equal(t, 2, ds.ClassIndex)
}

func TestParseUnknownClassAttribute(t *testing.T) {
	_, err := Parse(strings.NewReader(sample), "Outcome")
	assert.Error(t, err)
	rerr, ok := err.(*relieff.Error)
	assert.True(t, ok)
	assert.Equal(t, relieff.BadSchema, rerr.Kind)
}

func TestParseBadNominalValue(t *testing.T) {
	bad := strings.Replace(sample, "sunny,72,yes", "cloudy,72,yes", 1)
	_, err := Parse(strings.NewReader(bad), "Class")
	assert.Error(t, err)
	rerr, ok := err.(*relieff.Error)
	assert.True(t, ok)
	assert.Equal(t, relieff.BadData, rerr.Kind)
	assert.Greater(t, rerr.Line, 0)
}

func TestParseWrongCellCount(t *testing.T) {
	bad := strings.Replace(sample, "sunny,72,yes", "sunny,72", 1)
	_, err := Parse(strings.NewReader(bad), "Class")
	assert.Error(t, err)
	rerr, ok := err.(*relieff.Error)
	assert.True(t, ok)
	assert.Equal(t, relieff.BadData, rerr.Kind)
}

func TestWriteThenParseRoundTrip(t *testing.T) {
	ds, err := Parse(strings.NewReader(sample), "Class")
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, ds, []int{0, 1}))

	reparsed, err := Parse(&buf, "Class")
	assert.NoError(t, err)
	assert.Equal(t, ds.Relation, reparsed.Relation)
	assert.Len(t, reparsed.Instances, len(ds.Instances))
	assert.Equal(t, ds.Instances[0].Cells[1].Float, reparsed.Instances[0].Cells[1].Float)
}

func TestWriteProjectsOntoRetainedAttributes(t *testing.T) {
	ds, err := Parse(strings.NewReader(sample), "Class")
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, ds, []int{1}))

	reparsed, err := Parse(&buf, "Class")
	assert.NoError(t, err)
	assert.Len(t, reparsed.Attributes, 2, "pruned dataset should have the retained attribute plus the class attribute")
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""), "Class")
	assert.Error(t, err)
}

func TestParseIgnoresCommentsAndBlankLines(t *testing.T) {
	withGaps := "% leading comment\n\n" + sample + "\n% trailing comment\n"
	ds, err := Parse(strings.NewReader(withGaps), "Class")
	assert.NoError(t, err)
	assert.Equal(t, dataset.Nominal, ds.Attributes[0].Type)
}
