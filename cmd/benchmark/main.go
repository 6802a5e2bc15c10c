// Benchmark runs the solver over a scenario matrix and writes one CSV row
// per run: instance shape, configuration, best round count, tie count,
// search statistics and wall-clock duration.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/limaJavier/regroup/pkg/solver"
)

type Scenario struct {
	Entities     int
	MinGroupSize int
	Balanced     bool
	Workers      int
}

type BenchmarkResult struct {
	Run       string
	Scenario  Scenario
	Outcome   string
	Rounds    int
	Sequences int
	Nodes     uint64
	Pruned    uint64
	Duration  time.Duration
}

func main() {
	outPtr := flag.String("out", "", "path of the CSV output file; if empty, it is written to the standard output")
	timeoutPtr := flag.Duration("timeout", time.Minute, "per-scenario time limit")
	flag.Parse()

	run := uuid.NewString()
	scenarios := getScenarios()
	results := make([]BenchmarkResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		fmt.Fprintf(os.Stderr, "Benchmarking n=%d k=%d balanced=%v workers=%d\n",
			scenario.Entities, scenario.MinGroupSize, scenario.Balanced, scenario.Workers)

		result, duration, err := measure(scenario, *timeoutPtr)
		outcome := "solved"
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = "timeout"
		} else if err != nil {
			log.Fatalf("scenario failed: %v", err)
		}

		results = append(results, BenchmarkResult{
			Run:       run,
			Scenario:  scenario,
			Outcome:   outcome,
			Rounds:    result.Rounds,
			Sequences: len(result.Sequences),
			Nodes:     result.Stats.Nodes,
			Pruned:    result.Stats.Pruned,
			Duration:  duration,
		})
	}

	if err := toCsv(results, *outPtr); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

func getScenarios() []Scenario {
	scenarios := []Scenario{}
	for _, balanced := range []bool{false, true} {
		for n := 4; n <= 8; n++ {
			for k := 2; k <= n; k++ {
				scenarios = append(scenarios, Scenario{
					Entities:     n,
					MinGroupSize: k,
					Balanced:     balanced,
					Workers:      1,
				})
			}
		}
	}

	// Parallel variants of the heaviest instances
	scenarios = append(scenarios,
		Scenario{Entities: 8, MinGroupSize: 2, Workers: 4},
		Scenario{Entities: 8, MinGroupSize: 2, Balanced: true, Workers: 4},
	)
	return scenarios
}

func measure(scenario Scenario, timeout time.Duration) (solver.Result, time.Duration, error) {
	options := []solver.Option{solver.WithWorkers(scenario.Workers)}
	if scenario.Balanced {
		options = append(options, solver.WithBalancedRounds())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	result, err := solver.NewSolver(options...).Solve(ctx, solver.Input{
		Entities:     scenario.Entities,
		MinGroupSize: scenario.MinGroupSize,
	})
	return result, time.Since(start), err
}

func toCsv(results []BenchmarkResult, outFile string) error {
	out := os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"run", "entities", "min_group_size", "balanced", "workers", "outcome", "rounds", "sequences", "nodes", "pruned", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return err
	}

	rows := lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			result.Run,
			strconv.Itoa(result.Scenario.Entities),
			strconv.Itoa(result.Scenario.MinGroupSize),
			strconv.FormatBool(result.Scenario.Balanced),
			strconv.Itoa(result.Scenario.Workers),
			result.Outcome,
			strconv.Itoa(result.Rounds),
			strconv.Itoa(result.Sequences),
			strconv.FormatUint(result.Nodes, 10),
			strconv.FormatUint(result.Pruned, 10),
			strconv.FormatInt(result.Duration.Milliseconds(), 10),
		}
	})
	return writer.WriteAll(rows)
}
