package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"go-grid-arcade/internal/app"
	"go-grid-arcade/internal/component"
	"go-grid-arcade/internal/defs"
	"go-grid-arcade/internal/event"
	"go-grid-arcade/internal/interfaces"
	"go-grid-arcade/internal/simlog"
	"go-grid-arcade/internal/utils"
	"go-grid-arcade/pkg/grid"
)

type runStats struct {
	kind     interfaces.Kind
	runIndex int
	seed     int64

	phase     component.Phase
	reason    string
	elapsedMs float64
	ticks     int

	commands     int
	livesLost    int
	deaths       int
	destroyed    int
	tilesOpened  int
	monsters     int
	energyGained int
	abilityLocks int

	dump string
}

// inputBot presses random keys. Every tick it acts with probability rate.
type inputBot struct {
	rng  *utils.PRNGService
	rate float64
}

func (b *inputBot) act(g interfaces.Game) bool {
	if !b.rng.Chance(b.rate) {
		return false
	}
	dir := grid.OrthogonalDirections[b.rng.Intn(len(grid.OrthogonalDirections))]
	switch b.rng.ChooseWeighted([]int{70, 20, 5, 3, 2}) {
	case 0:
		g.MovePlayer(dir)
	case 1:
		g.FirePlayer()
	case 2:
		g.PlaceMark(dir)
	case 3:
		g.ClearMark(dir)
	default:
		g.ConsumeResourceAbility()
	}
	return true
}

func main() {
	var runs, ticks, stepMs int
	var seedBase, seedStep int64
	var gameName, difficulty, defsPath string
	var rate float64
	var dump bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs per game")
	flag.IntVar(&ticks, "ticks", 6000, "ticks per run")
	flag.IntVar(&stepMs, "step", 16, "simulated milliseconds per tick")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&gameName, "game", "all", "lakewars, minimines, towerfight or all")
	flag.StringVar(&difficulty, "difficulty", "easy", "Lake Wars difficulty")
	flag.StringVar(&defsPath, "defs", "", "YAML definitions file (default: built-in)")
	flag.Float64Var(&rate, "input-rate", 0.05, "chance per tick that the input bot presses a key")
	flag.BoolVar(&dump, "dump", false, "print the final board of every run")
	flag.Parse()

	if runs <= 0 || ticks <= 0 || stepMs <= 0 {
		fmt.Println("error: -runs, -ticks and -step must be > 0")
		os.Exit(2)
	}
	kinds, err := selectKinds(gameName)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}
	diff, err := defs.ParseDifficulty(difficulty)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}
	d := defs.Default()
	if defsPath != "" {
		if d, err = defs.Load(defsPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("=== Headless Arcade Report ===\n")
	fmt.Printf("games=%s difficulty=%s runs=%d ticks=%d step=%dms seed_base=%d seed_step=%d\n\n",
		gameName, diff, runs, ticks, stepMs, seedBase, seedStep)

	for _, kind := range kinds {
		all := make([]runStats, 0, runs)
		for i := 0; i < runs; i++ {
			seed := seedBase + int64(i)*seedStep
			stats, err := runMatch(kind, diff, d, seed, ticks, stepMs, rate)
			if err != nil {
				fmt.Printf("error: %s run %d: %v\n", kind, i+1, err)
				os.Exit(1)
			}
			stats.runIndex = i + 1
			all = append(all, stats)
			printRun(stats)
			if dump {
				fmt.Println(stats.dump)
			}
		}
		printAggregate(kind, summarize(all))
	}
}

func selectKinds(name string) ([]interfaces.Kind, error) {
	if name == "all" {
		return interfaces.Kinds, nil
	}
	k, err := app.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []interfaces.Kind{k}, nil
}

// runMatch plays one level with a fake clock until it ends or ticks run out.
func runMatch(kind interfaces.Kind, diff defs.Difficulty, d *defs.Definitions, seed int64, ticks, stepMs int, rate float64) (runStats, error) {
	g, err := app.New(kind, d, app.Options{Seed: seed})
	if err != nil {
		return runStats{}, err
	}
	rec := simlog.New(0, g.RunInfo)
	rec.Attach(g.Events())
	if err := g.StartLevel(diff); err != nil {
		return runStats{}, err
	}

	bot := &inputBot{rng: utils.NewPRNGService(seed), rate: rate}
	stats := runStats{kind: kind, seed: seed}
	now := time.Unix(0, 0)
	g.Update(now)
	for stats.ticks < ticks && g.Snapshot().Phase == component.Running {
		if bot.act(g) {
			stats.commands++
		}
		now = now.Add(time.Duration(stepMs) * time.Millisecond)
		g.Update(now)
		stats.ticks++
	}

	snap := g.Snapshot()
	stats.phase, stats.reason = snap.Phase, snap.Reason
	stats.elapsedMs = snap.Counters.ElapsedMs
	stats.livesLost = rec.Count("", string(event.LifeLost))
	stats.deaths = rec.Count("", string(event.AgentDied)) + rec.Count("", string(event.HostileRemoved))
	stats.destroyed = rec.Count("", string(event.StructureDestroyed))
	stats.tilesOpened = rec.Count("", string(event.TileOpened))
	stats.monsters = rec.Count("", string(event.MonsterSpawned))
	stats.energyGained = rec.Count("", string(event.EnergyGained))
	stats.abilityLocks = rec.Count("", string(event.AbilityDisabled))
	stats.dump = snap.Dump()
	g.Stop()
	return stats, nil
}

type aggregate struct {
	runs      int
	outcomes  map[string]int
	meanMs    float64
	medianMs  float64
	commands  int
	livesLost int
	deaths    int
	destroyed int
	opened    int
}

// summarize folds runs into totals. Runs still going when ticks ran out
// count as "timeout".
func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), outcomes: map[string]int{}}
	if len(all) == 0 {
		return agg
	}
	durations := make([]float64, 0, len(all))
	total := 0.0
	for _, s := range all {
		outcome := s.phase.String()
		if s.phase == component.Running {
			outcome = "timeout"
		}
		agg.outcomes[outcome]++
		durations = append(durations, s.elapsedMs)
		total += s.elapsedMs
		agg.commands += s.commands
		agg.livesLost += s.livesLost
		agg.deaths += s.deaths
		agg.destroyed += s.destroyed
		agg.opened += s.tilesOpened
	}
	sort.Float64s(durations)
	agg.meanMs = total / float64(len(all))
	mid := len(durations) / 2
	if len(durations)%2 == 1 {
		agg.medianMs = durations[mid]
	} else {
		agg.medianMs = (durations[mid-1] + durations[mid]) / 2
	}
	return agg
}

func printRun(s runStats) {
	fmt.Printf("[%s run %d] seed=%d result=%s", s.kind, s.runIndex, s.seed, s.phase)
	if s.reason != "" {
		fmt.Printf(" (%s)", s.reason)
	}
	fmt.Printf(" t=%.0fms ticks=%d commands=%d\n", s.elapsedMs, s.ticks, s.commands)
	fmt.Printf("  lives_lost=%d deaths=%d destroyed=%d opened=%d monsters=%d energy=%d ability_locks=%d\n",
		s.livesLost, s.deaths, s.destroyed, s.tilesOpened, s.monsters, s.energyGained, s.abilityLocks)
}

func printAggregate(kind interfaces.Kind, agg aggregate) {
	names := make([]string, 0, len(agg.outcomes))
	for name := range agg.outcomes {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\n--- %s aggregate (%d runs) ---\n", kind.Title(), agg.runs)
	for _, name := range names {
		fmt.Printf("  %-8s %d\n", name, agg.outcomes[name])
	}
	fmt.Printf("  duration mean=%.0fms median=%.0fms\n", agg.meanMs, agg.medianMs)
	fmt.Printf("  totals commands=%d lives_lost=%d deaths=%d destroyed=%d opened=%d\n\n",
		agg.commands, agg.livesLost, agg.deaths, agg.destroyed, agg.opened)
}
