package main

import (
	"context"
	"fmt"
	"log"

	"github.com/picoscope-go/picoscope"
	"github.com/picoscope-go/picoscope/internal/adapters/sim"
)

func main() {
	cfg, err := picoscope.LoadConfig("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rig, err := picoscope.NewRig(cfg, sim.New(), nil)
	if err != nil {
		log.Fatalf("assemble rig: %v", err)
	}
	defer rig.Close()

	set, err := rig.Capture(context.Background())
	if err != nil {
		log.Fatalf("capture: %v", err)
	}

	for ch, trace := range set.Millivolts {
		fmt.Printf("channel %s: %d samples, first %.2f mV, last %.2f mV\n",
			ch, len(trace), trace[0], trace[len(trace)-1])
	}
}
