package relieff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdipaolo/relieff/dataset"
)

// buildBinaryDataset builds a 1-numeric-attribute, 2-class dataset where
// same-class instances are close and opposite-class instances are far,
// so the attribute's Relief-F weight should come out positive.
func buildBinaryDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	b := dataset.NewBuilder("r")
	b.AddAttribute(dataset.Attribute{Name: "X", Type: dataset.Numeric})
	b.AddAttribute(dataset.Attribute{Name: "Class", Type: dataset.Nominal, Labels: []string{"yes", "no"}})
	b.SetClassIndex(1)
	rows := []struct {
		x float64
		c int
	}{
		{0, 0}, {1, 0}, {2, 0},
		{100, 1}, {101, 1}, {102, 1},
	}
	for _, r := range rows {
		assert.NoError(t, b.AddInstance(dataset.Instance{Cells: []dataset.Cell{{Float: r.x}, {Index: r.c}}}))
	}
	return b.Build()
}

func TestUpdateWeightsFavorsDiscriminatingAttribute(t *testing.T) {
	ds := buildBinaryDataset(t)
	cfg := DefaultConfig()
	cfg.K = 2
	cfg.SampleSize = SampleAll
	e := NewEvaluator(cfg)
	assert.NoError(t, e.Build(ds))

	w, err := e.Weight(0)
	assert.NoError(t, err)
	assert.Greater(t, w, 0.0, "an attribute that perfectly separates classes should get a positive weight")
}

func TestUpdateWeightsEqualVsDistanceWeighted(t *testing.T) {
	ds := buildBinaryDataset(t)

	cfgEqual := DefaultConfig()
	cfgEqual.K = 2
	cfgEqual.WeightByDistance = false
	eq := NewEvaluator(cfgEqual)
	assert.NoError(t, eq.Build(ds))

	cfgDist := DefaultConfig()
	cfgDist.K = 2
	cfgDist.WeightByDistance = true
	dist := NewEvaluator(cfgDist)
	assert.NoError(t, dist.Build(ds))

	wEq, _ := eq.Weight(0)
	wDist, _ := dist.Weight(0)
	assert.Greater(t, wEq, 0.0)
	assert.Greater(t, wDist, 0.0)
}
