package autopilot

import (
	"math/rand"
	"sync"
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/engine"
	"github.com/automoto/brawler/round"
)

// BatchOptions describes a set of independent headless matches.
type BatchOptions struct {
	Runs    int
	Workers int
	Seed    int64
	Fight   round.Fight
	Play    PlayOptions

	// Driver builds the human side for one run. Nil uses a Bot.
	Driver func(seed int64) Driver
}

// Summary aggregates a batch.
type Summary struct {
	Runs            int     `json:"runs"`
	PlayerWins      int     `json:"playerWins"`
	CPUWins         int     `json:"cpuWins"`
	TimedOut        int     `json:"timedOut"`
	CPUWinRate      float64 `json:"cpuWinRate"`
	AvgDuration     float64 `json:"avgDurationSeconds"`
	AvgPlayerHealth float64 `json:"avgPlayerHealth"`
	AvgCPUHealth    float64 `json:"avgCpuHealth"`
}

// RunSeed is the seed of run i, independent of which worker plays it.
func RunSeed(seed int64, i int) int64 {
	return seed + int64(i)*7919
}

// RunBatch plays opts.Runs matches on a pool of workers. The summary only
// depends on the seed, not on scheduling.
func RunBatch(opts BatchOptions) Summary {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Driver == nil {
		opts.Driver = func(seed int64) Driver { return NewBot(seed) }
	}

	var (
		mu           sync.Mutex
		sum          Summary
		totalTime    time.Duration
		playerHealth int
		cpuHealth    int
	)

	wg := sync.WaitGroup{}
	jobs := make(chan int, opts.Runs)
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seed := RunSeed(opts.Seed, i)
				e := engine.New(engine.Options{
					Fight:  opts.Fight,
					Random: rand.New(rand.NewSource(seed)),
				})
				res := Play(e, opts.Driver(seed), opts.Play)

				mu.Lock()
				switch {
				case res.TimedOut:
					sum.TimedOut++
				case res.Winner == cfg.SideCPU:
					sum.CPUWins++
				case res.Winner == cfg.SidePlayer:
					sum.PlayerWins++
				}
				totalTime += res.Duration
				playerHealth += res.PlayerHealth
				cpuHealth += res.CPUHealth
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < opts.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sum.Runs = opts.Runs
	if n := float64(opts.Runs); n > 0 {
		sum.CPUWinRate = float64(sum.CPUWins) / n
		sum.AvgDuration = totalTime.Seconds() / n
		sum.AvgPlayerHealth = float64(playerHealth) / n
		sum.AvgCPUHealth = float64(cpuHealth) / n
	}
	return sum
}
