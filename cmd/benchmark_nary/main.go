package main

import (
	"log"
	"os"
	"time"

	"github.com/beaconparty/beacon/nary"
	"github.com/beaconparty/beacon/signal"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type benchmarkConfig struct {
	name       string
	subs       int
	iterations int
}

func main() {
	log.Print("Starting nary benchmark, please wait...")
	defer log.Print("Finished nary benchmark")

	cfgs := []benchmarkConfig{
		{name: "narrow", subs: 1, iterations: 200_000},
		{name: "medium", subs: 100, iterations: 20_000},
		{name: "wide", subs: 10_000, iterations: 200},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"signal", "subs", "nTimes", "deliveries", "time", "deliveryRate",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		s := nary.NewSignal2[int, int](signal.WithSpawner(signal.Inline()))
		var count int64
		for i := 0; i < cfg.subs; i++ {
			s.Connect(func(a, b int) error {
				count++
				return nil
			})
		}

		start := time.Now()
		for i := 0; i < cfg.iterations; i++ {
			if err := s.Fire(i, i+1); err != nil {
				log.Panic(err)
			}
		}
		took := time.Since(start)
		s.Destroy()

		expected := int64(cfg.subs) * int64(cfg.iterations)
		if count != expected {
			log.Panicf("expected %d deliveries, got %d", expected, count)
		}

		rate := float64(count) / took.Seconds()
		table.Append([]string{
			"Signal2[int,int]",
			humanize.Comma(int64(cfg.subs)),
			humanize.Comma(int64(cfg.iterations)),
			humanize.Comma(count),
			took.Round(time.Microsecond).String(),
			humanize.Comma(int64(rate)),
		})
	}

	table.Render()
}
