package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beaconparty/beacon/signal"
	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	subCounts  = []int{1, 10, 100, 1_000}
	packCounts = []int{1, 10, 100}
	iters      = flag.Int("iters", 100, "timed fire rounds per matrix cell")
)

func main() {
	flag.Parse()

	log.Printf("warming up")
	benchmarkFire(false)
	benchmarkFire(true)
}

func benchmarkFire(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Beacon Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, subs := range subCounts {
		for _, packs := range packCounts {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})

			s := signal.New[string](signal.WithSpawner(signal.Inline()))
			var digest uint64
			for i := 0; i < subs; i++ {
				s.Connect(func(v string) error {
					digest += xxhash.Sum64String(v)
					return nil
				})
			}

			var want uint64
			payloads := make([]string, packs)
			for i := range payloads {
				payloads[i] = fmt.Sprintf("pack-%d", i)
				want += xxhash.Sum64String(payloads[i]) * uint64(subs)
			}
			want *= uint64(*iters)

			for i := 0; i < *iters; i++ {
				start := time.Now()
				for _, p := range payloads {
					if err := s.Fire(p); err != nil {
						log.Panic(err)
					}
				}
				tach.AddTime(time.Since(start))
			}
			s.Destroy()

			if digest != want {
				log.Panicf("delivery checksum mismatch: got %d want %d", digest, want)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("fire: %d subs * %d packs", subs, packs),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
