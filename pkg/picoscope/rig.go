package picoscope

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/picoscope-go/picoscope/internal/app/config"
	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
	"github.com/picoscope-go/picoscope/internal/scope"
)

// Rig is a fully configured bench: an open session with channels,
// trigger, and signal generator applied from a Config, plus an optional
// archive sink. It is the unit the CLI and examples operate on.
type Rig struct {
	*Session

	cfg     *config.Config
	archive ports.Archive
	obs     ports.Observability
	serial  string
}

// RigOption customizes rig assembly.
type RigOption func(*Rig)

// WithArchive attaches a sink that receives every capture's converted
// records.
func WithArchive(a ports.Archive) RigOption {
	return func(r *Rig) { r.archive = a }
}

// NewRig opens a session over drv and applies the device, channel,
// trigger, and signal-generator sections of cfg. On any failure the
// session is torn down before returning.
func NewRig(cfg *config.Config, drv ports.Driver, obs ports.Observability, opts ...RigOption) (*Rig, error) {
	resolution, err := domain.ParseResolution(cfg.Device.Resolution)
	if err != nil {
		return nil, err
	}

	sess, err := scope.Open(drv, obs, scope.Options{
		Serial:       cfg.Device.Serial,
		Resolution:   resolution,
		PollInterval: cfg.Device.PollInterval,
		WaitTimeout:  cfg.Device.WaitTimeout,
	})
	if err != nil {
		return nil, err
	}

	r := &Rig{Session: sess, cfg: cfg, obs: obs}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.applyConfig(); err != nil {
		sess.Close()
		return nil, err
	}

	serial, err := sess.UnitSerial()
	if err != nil {
		sess.Close()
		return nil, err
	}
	r.serial = serial
	return r, nil
}

func (r *Rig) applyConfig() error {
	for _, cc := range r.cfg.Channels {
		ch, err := domain.ParseChannel(cc.Channel)
		if err != nil {
			return err
		}
		rng, err := domain.ParseRange(cc.Range)
		if err != nil {
			return err
		}
		coupling, err := domain.ParseCoupling(cc.Coupling)
		if err != nil {
			return err
		}
		bandwidth, err := domain.ParseBandwidth(cc.Bandwidth)
		if err != nil {
			return err
		}
		if err := r.SetChannel(ch, ports.ChannelSettings{
			Enabled:     true,
			Range:       rng,
			Coupling:    coupling,
			OffsetVolts: cc.OffsetVolts,
			Bandwidth:   bandwidth,
		}); err != nil {
			return err
		}
	}

	if r.cfg.Trigger.Channel != "" {
		src, err := domain.ParseChannel(r.cfg.Trigger.Channel)
		if err != nil {
			return err
		}
		dir, err := domain.ParseTriggerDirection(r.cfg.Trigger.Direction)
		if err != nil {
			return err
		}
		if err := r.SetSimpleTrigger(scope.TriggerConfig{
			Source:        src,
			ThresholdMV:   r.cfg.Trigger.ThresholdMV,
			Direction:     dir,
			DelaySamples:  r.cfg.Trigger.DelaySamples,
			AutoTriggerMS: r.cfg.Trigger.AutoTriggerMS,
			Enabled:       true,
		}); err != nil {
			return err
		}
	}

	if r.cfg.SigGen.Enabled {
		wave, err := domain.ParseWaveform(r.cfg.SigGen.Waveform)
		if err != nil {
			return err
		}
		if err := r.SigGenSetWaveform(wave); err != nil {
			return err
		}
		if err := r.SigGenSetRange(r.cfg.SigGen.Pk2PkMV, r.cfg.SigGen.OffsetMV); err != nil {
			return err
		}
		if err := r.SigGenSetFrequency(r.cfg.SigGen.FrequencyHz); err != nil {
			return err
		}
		if _, err := r.SigGenApply(ports.SigGenApplyRequest{Enabled: true}); err != nil {
			return err
		}
	}
	return nil
}

// Serial returns the device serial cached at rig assembly.
func (r *Rig) Serial() string { return r.serial }

// CaptureSet is one complete capture: raw buffers, converted traces,
// and the archive-ready records.
type CaptureSet struct {
	CaptureID  string
	Raw        domain.ChannelBuffers
	Millivolts map[domain.Channel][]float64
	Samples    int
	Overflow   domain.Overflow
	IntervalNS float64
	Records    []domain.CaptureRecord
}

// Capture runs one block capture with the configured timebase and
// sample split, converts every trace to millivolts, and archives the
// records when a sink is attached. Archive failures fail the capture;
// the data is still in the returned set for the caller to salvage.
func (r *Rig) Capture(ctx context.Context) (*CaptureSet, error) {
	dtype, err := domain.ParseDataType(r.cfg.Capture.DataType)
	if err != nil {
		return nil, err
	}

	info, err := r.ResolveTimebase(r.cfg.Capture.Timebase, r.cfg.Capture.Samples, r.cfg.Capture.Segment)
	if err != nil {
		return nil, err
	}

	res, err := r.RunSimpleBlockCapture(ctx, scope.BlockRequest{
		Timebase:          r.cfg.Capture.Timebase,
		Samples:           r.cfg.Capture.Samples,
		PreTriggerPercent: r.cfg.Capture.PreTriggerPercent,
		Segment:           r.cfg.Capture.Segment,
		DataType:          dtype,
	})
	if err != nil {
		return nil, err
	}

	millivolts, err := r.BuffersToMillivolts(res.Buffers)
	if err != nil {
		return nil, err
	}

	set := &CaptureSet{
		CaptureID:  uuid.NewString(),
		Raw:        res.Buffers,
		Millivolts: millivolts,
		Samples:    res.Samples,
		Overflow:   res.Overflow,
		IntervalNS: info.IntervalNS,
	}

	capturedAt := time.Now().UTC()
	for _, ch := range res.Buffers.Channels() {
		rng, _ := r.ChannelRange(ch)
		set.Records = append(set.Records, domain.CaptureRecord{
			CaptureID:    set.CaptureID,
			DeviceSerial: r.serial,
			Channel:      ch,
			CapturedAt:   capturedAt,
			IntervalNS:   info.IntervalNS,
			Range:        rng,
			Overflow:     res.Overflow.Channel(ch),
			Millivolts:   millivolts[ch],
		})
	}

	if r.archive != nil {
		if err := r.archive.WriteCaptures(set.Records); err != nil {
			return set, err
		}
		if r.obs != nil {
			r.obs.IncCounter("pico_captures_archived_total", float64(len(set.Records)))
			r.obs.LogInfo("capture archived",
				ports.Field{Key: "capture_id", Value: set.CaptureID},
				ports.Field{Key: "sink", Value: r.archive.Name()},
				ports.Field{Key: "records", Value: len(set.Records)},
			)
		}
	}
	return set, nil
}
