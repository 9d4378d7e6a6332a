package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"colorlife/internal/sims/colorlife"

	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"
)

type scenario struct {
	density   float64
	mutateMax float64
}

func (s scenario) String() string {
	return fmt.Sprintf("density=%.2f mutate=0..%.0f", s.density, s.mutateMax)
}

type result struct {
	scenario
	generations int
	reseeds     int
	peakAlive   int
	finalAlive  int
}

// meanRun is the average number of generations per seeding. The run still
// in progress when the sweep stops counts as one.
func (r result) meanRun() float64 {
	return float64(r.generations) / float64(r.reseeds+1)
}

func grid(densities, mutates []float64) []scenario {
	out := make([]scenario, 0, len(densities)*len(mutates))
	for _, d := range densities {
		for _, m := range mutates {
			out = append(out, scenario{density: d, mutateMax: m})
		}
	}
	return out
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}

func runScenario(ctx context.Context, base colorlife.Config, sc scenario, ticks int) (result, error) {
	cfg := base
	cfg.Params.SeedDensity = sc.density
	cfg.Params.MutateMax = sc.mutateMax
	world, err := colorlife.NewWithConfig(cfg)
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", sc, err)
	}
	res := result{scenario: sc, peakAlive: world.Stats().Alive}
	for i := 0; i < ticks; i++ {
		if i%64 == 0 && ctx.Err() != nil {
			return result{}, ctx.Err()
		}
		world.Tick(world.Params())
		if alive := world.Stats().Alive; alive > res.peakAlive {
			res.peakAlive = alive
		}
	}
	st := world.Stats()
	res.generations = st.Total
	res.reseeds = st.Reseeds
	res.finalAlive = st.Alive
	return res, nil
}

// sweep runs every scenario with at most workers running at once. Results
// keep the order of scenarios.
func sweep(ctx context.Context, base colorlife.Config, scenarios []scenario, ticks, workers int) ([]result, error) {
	results := make([]result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, base, sc, ticks)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func report(w io.Writer, results []result, colour bool) {
	au := aurora.NewAurora(colour)
	best := -1
	for i, r := range results {
		if best < 0 || r.meanRun() > results[best].meanRun() {
			best = i
		}
	}
	for i, r := range results {
		reseeds := au.Green(r.reseeds)
		if r.reseeds > 0 && r.meanRun() < 50 {
			reseeds = au.Red(r.reseeds)
		}
		line := fmt.Sprintf("%-28s gens=%-6d reseeds=%-4v mean run=%-8.1f peak=%-6d final=%d",
			r.scenario, r.generations, reseeds, r.meanRun(), r.peakAlive, r.finalAlive)
		if i == best {
			fmt.Fprintln(w, au.Bold(au.Cyan(line)))
			continue
		}
		fmt.Fprintln(w, line)
	}
}
