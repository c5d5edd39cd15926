// Package config loads the CLI-facing option surface from an optional
// YAML file, overlaying only the fields it sets onto a struct of
// defaults, and maps the result onto relieff.Config, the core
// evaluator's tunables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cdipaolo/relieff/relieff"
)

// File is the on-disk shape of a relieff YAML configuration file. Every
// field is optional; unset fields fall back to relieff.DefaultConfig.
type File struct {
	Algorithm        string `yaml:"algorithm"`
	Class            string `yaml:"class"`
	Difference       string `yaml:"difference"`
	Prune            string `yaml:"prune"`
	SampleSize       *int   `yaml:"sample_size"`
	K                *int   `yaml:"k"`
	Sigma            *int   `yaml:"sigma"`
	WeightByDistance *bool  `yaml:"weight_by_distance"`
	Seed             *int64 `yaml:"seed"`
	ClockSeed        *bool  `yaml:"clock_seed"`
	Workers          *int   `yaml:"workers"`
	ArffOut          string `yaml:"arff_out"`
}

// Resolved is the fully-materialized option surface: relieff's core
// Config plus the options that live outside the evaluator proper
// (class attribute name, prune spec, output path).
type Resolved struct {
	Core     relieff.Config
	Class    string
	PruneRaw string
	ArffOut  string
}

// Default returns the built-in option defaults, with no file involved:
// relieff.DefaultConfig's tunables, a "Class" class attribute name, and
// no pruning.
func Default() Resolved {
	return Resolved{
		Core:     relieff.DefaultConfig(),
		Class:    "Class",
		PruneRaw: "0",
	}
}

// Load reads an optional YAML file at path and overlays it onto the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (Resolved, error) {
	r := Default()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Resolved{}, &relieff.Error{Kind: relieff.IOFailure, Path: path, Msg: err.Error(), Cause: err}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Resolved{}, &relieff.Error{Kind: relieff.IOFailure, Path: path, Msg: "invalid yaml: " + err.Error(), Cause: err}
	}

	if err := r.applyFile(f); err != nil {
		return Resolved{}, err
	}
	return r, nil
}

func (r *Resolved) applyFile(f File) error {
	if f.Algorithm != "" {
		v, err := parseVersion(f.Algorithm)
		if err != nil {
			return err
		}
		r.Core.Version = v
	}
	if f.Class != "" {
		r.Class = f.Class
	}
	if f.Difference != "" {
		d, err := parseDifference(f.Difference)
		if err != nil {
			return err
		}
		r.Core.Difference = d
	}
	if f.Prune != "" {
		r.PruneRaw = f.Prune
	}
	if f.SampleSize != nil {
		r.Core.SampleSize = *f.SampleSize
	}
	if f.K != nil {
		r.Core.K = *f.K
	}
	if f.Sigma != nil {
		r.Core.Sigma = *f.Sigma
	}
	if f.WeightByDistance != nil {
		r.Core.WeightByDistance = *f.WeightByDistance
	}
	if f.Seed != nil {
		r.Core.Seed = *f.Seed
	}
	if f.ClockSeed != nil {
		r.Core.ClockSeed = *f.ClockSeed
	}
	if f.Workers != nil {
		r.Core.Workers = *f.Workers
	}
	if f.ArffOut != "" {
		r.ArffOut = f.ArffOut
	}
	return nil
}

func parseVersion(s string) (relieff.Version, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "P":
		return relieff.VersionP, nil
	case "G":
		return relieff.VersionG, nil
	default:
		return 0, &relieff.Error{Kind: relieff.BadArguments, Option: "algorithm", Msg: fmt.Sprintf("unknown algorithm %q, want P or G", s)}
	}
}

func parseDifference(s string) (relieff.Difference, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GENOTYPE":
		return relieff.Genotype, nil
	case "ALLELE_SHARING":
		return relieff.AlleleSharing, nil
	default:
		return 0, &relieff.Error{Kind: relieff.BadArguments, Option: "difference", Msg: fmt.Sprintf("unknown difference %q, want GENOTYPE or ALLELE_SHARING", s)}
	}
}

// ParsePrune resolves a prune spec (an absolute integer, or a
// percentage like "25%") against nAttrs, the number of non-class
// attributes. The spec is kept in string form until the attribute
// count is known, since a percentage can't be resolved any earlier.
func ParsePrune(nAttrs int, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if strings.HasSuffix(raw, "%") {
		pctStr := strings.TrimSuffix(raw, "%")
		pct, err := strconv.ParseFloat(pctStr, 64)
		if err != nil {
			return 0, &relieff.Error{Kind: relieff.BadArguments, Option: "prune", Msg: fmt.Sprintf("invalid percentage %q", raw)}
		}
		return int(pct / 100 * float64(nAttrs)), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &relieff.Error{Kind: relieff.BadArguments, Option: "prune", Msg: fmt.Sprintf("invalid integer %q", raw)}
	}
	return n, nil
}
