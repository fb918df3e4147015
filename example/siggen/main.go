package main

import (
	"context"
	"fmt"
	"log"

	"github.com/picoscope-go/picoscope"
	"github.com/picoscope-go/picoscope/internal/adapters/sim"
)

// Drives the auxiliary signal generator and captures the result on
// channel A. With the simulated unit the generator is a loopback.
func main() {
	sess, err := picoscope.Open(sim.New(), nil, picoscope.Options{
		Resolution: picoscope.Resolution8Bit,
	})
	if err != nil {
		log.Fatalf("open unit: %v", err)
	}
	defer sess.Close()

	if err := sess.EnableChannel(picoscope.ChannelA, picoscope.Range1V); err != nil {
		log.Fatalf("enable channel: %v", err)
	}

	if err := sess.SigGenSetWaveform(picoscope.WaveSine); err != nil {
		log.Fatalf("siggen waveform: %v", err)
	}
	if err := sess.SigGenSetRange(1800, 0); err != nil {
		log.Fatalf("siggen range: %v", err)
	}
	if err := sess.SigGenSetFrequency(10_000); err != nil {
		log.Fatalf("siggen frequency: %v", err)
	}
	res, err := sess.SigGenApply(picoscope.SigGenApplyRequest{Enabled: true})
	if err != nil {
		log.Fatalf("siggen apply: %v", err)
	}
	fmt.Printf("generator running at %.1f Hz\n", res.Frequency)

	block, err := sess.RunSimpleBlockCapture(context.Background(), picoscope.BlockRequest{
		Timebase:          2,
		Samples:           500,
		PreTriggerPercent: 50,
	})
	if err != nil {
		log.Fatalf("capture: %v", err)
	}

	mv, err := sess.BufferToMillivolts(block.Buffers[picoscope.ChannelA], picoscope.ChannelA)
	if err != nil {
		log.Fatalf("convert: %v", err)
	}
	fmt.Printf("captured %d samples, peak %.2f mV\n", block.Samples, peak(mv))
}

func peak(mv []float64) float64 {
	var p float64
	for _, v := range mv {
		if v > p {
			p = v
		}
	}
	return p
}
