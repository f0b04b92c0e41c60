package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/beaconparty/beacon/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity signal façade",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest argument count to generate",
				Value: 4,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for nary started")
	defer func() {
		log.Printf("Codegen for nary finished in %v", time.Since(start))
	}()

	count := cmd.Uint(arityCountKey)
	log.Printf("Arity count: %d", count)

	contents := templates.NaryGen(int(count))
	return os.WriteFile("nary/signals.go", []byte(contents), 0644)
}
