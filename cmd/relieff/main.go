// Command relieff ranks (and optionally prunes) the attributes of a
// tabular dataset using the Relief-F family of feature evaluators. It
// wires the ARFF parser, the CLI argument layer, and the report and
// dataset writers around the relieff.Evaluator core.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cdipaolo/relieff/arff"
	"github.com/cdipaolo/relieff/config"
	"github.com/cdipaolo/relieff/relieff"
	"github.com/cdipaolo/relieff/report"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("relieff", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (optional; CLI flags override it)")
	algorithm := fs.String("algorithm", "", "P (batch) or G (iterative); default P")
	class := fs.String("class", "", "class attribute name; default \"Class\"")
	difference := fs.String("difference", "", "GENOTYPE or ALLELE_SHARING; default GENOTYPE")
	prune := fs.String("prune", "", "attributes to drop from the tail of the ranking, count or N%%")
	sampleSize := fs.Int("sample_size", -2, "references to process; -1 or unset means all")
	k := fs.Int("k", 0, "neighbors per class; default 10")
	sigma := fs.Int("sigma", 0, "rank-decay parameter; default 2")
	weightByDistance := fs.Bool("weight_by_distance", true, "enable rank-weighted neighbor averaging")
	seed := fs.Int64("seed", 0, "sampler seed; default 1")
	clockSeed := fs.Bool("clock_seed", false, "seed the sampler from wall-clock time instead of -seed")
	workers := fs.Int("workers", 0, "number of concurrent workers; default 1")
	arffOut := fs.String("arff", "", "output ARFF file for the pruned dataset (optional)")
	csvOut := fs.String("csv", "", "output CSV file for the ranked weights (optional)")

	if err := fs.Parse(args); err != nil {
		return exitFor(&relieff.Error{Kind: relieff.BadArguments, Msg: err.Error()})
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: relieff [options] ARFF_FILE")
		return exitFor(&relieff.Error{Kind: relieff.BadArguments, Msg: "missing ARFF_FILE argument"})
	}
	inputPath := fs.Arg(0)

	resolved, err := config.Load(*configPath)
	if err != nil {
		return exitFor(err)
	}
	applyFlags(&resolved, fs, algorithm, class, difference, prune, sampleSize, k, sigma, weightByDistance, seed, clockSeed, workers, arffOut)

	if err := mainRun(inputPath, resolved, *csvOut); err != nil {
		return exitFor(err)
	}
	return 0
}

func applyFlags(r *config.Resolved, fs *flag.FlagSet, algorithm, class, difference, prune *string, sampleSize, k, sigma *int, weightByDistance *bool, seed *int64, clockSeed *bool, workers *int, arffOut *string) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithm":
			if *algorithm == "G" {
				r.Core.Version = relieff.VersionG
			} else {
				r.Core.Version = relieff.VersionP
			}
		case "class":
			r.Class = *class
		case "difference":
			if *difference == "ALLELE_SHARING" {
				r.Core.Difference = relieff.AlleleSharing
			} else {
				r.Core.Difference = relieff.Genotype
			}
		case "prune":
			r.PruneRaw = *prune
		case "sample_size":
			r.Core.SampleSize = *sampleSize
		case "k":
			r.Core.K = *k
		case "sigma":
			r.Core.Sigma = *sigma
		case "weight_by_distance":
			r.Core.WeightByDistance = *weightByDistance
		case "seed":
			r.Core.Seed = *seed
		case "clock_seed":
			r.Core.ClockSeed = *clockSeed
		case "workers":
			r.Core.Workers = *workers
		case "arff":
			r.ArffOut = *arffOut
		}
	})
}

func mainRun(inputPath string, resolved config.Resolved, csvOut string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return &relieff.Error{Kind: relieff.IOFailure, Path: inputPath, Msg: err.Error(), Cause: err}
	}
	defer f.Close()

	ds, err := arff.Parse(f, resolved.Class)
	if err != nil {
		return err
	}

	ev := relieff.NewEvaluator(resolved.Core)
	if err := ev.Build(ds); err != nil {
		return err
	}

	pruneCount, err := config.ParsePrune(ev.NumAttributes()-1, resolved.PruneRaw)
	if err != nil {
		return err
	}

	retained, err := ev.Retained(pruneCount)
	if err != nil {
		return err
	}

	ranked := ev.Rank()
	truncated := ranked[:len(retained)]

	if err := report.WriteTable(os.Stdout, truncated); err != nil {
		return &relieff.Error{Kind: relieff.IOFailure, Msg: err.Error(), Cause: err}
	}

	if csvOut != "" {
		cf, err := os.Create(csvOut)
		if err != nil {
			return &relieff.Error{Kind: relieff.IOFailure, Path: csvOut, Msg: err.Error(), Cause: err}
		}
		defer cf.Close()
		if err := report.WriteCSV(cf, truncated); err != nil {
			return &relieff.Error{Kind: relieff.IOFailure, Path: csvOut, Msg: err.Error(), Cause: err}
		}
	}

	if resolved.ArffOut != "" {
		af, err := os.Create(resolved.ArffOut)
		if err != nil {
			return &relieff.Error{Kind: relieff.IOFailure, Path: resolved.ArffOut, Msg: err.Error(), Cause: err}
		}
		defer af.Close()
		if err := arff.Write(af, ds, retained); err != nil {
			return &relieff.Error{Kind: relieff.IOFailure, Path: resolved.ArffOut, Msg: err.Error(), Cause: err}
		}
	}

	return nil
}

// exitFor maps a relieff.Error's Kind onto a distinct process exit
// code. Non-relieff errors exit 1.
func exitFor(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "relieff:", err)

	var rerr *relieff.Error
	if as(err, &rerr) {
		switch rerr.Kind {
		case relieff.BadArguments:
			return 2
		case relieff.IOFailure:
			return 3
		case relieff.BadSchema:
			return 4
		case relieff.BadData:
			return 5
		case relieff.BadIndex:
			return 6
		case relieff.OutOfMemory:
			return 7
		case relieff.PruneOverflow:
			return 8
		}
	}
	return 1
}

func as(err error, target **relieff.Error) bool {
	for err != nil {
		if e, ok := err.(*relieff.Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
