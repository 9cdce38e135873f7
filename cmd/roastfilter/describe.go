package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/response"
	"github.com/cwbudde/algo-smooth/internal/pipeline"
)

const (
	describeLength    = 4096
	settlingTolerance = 0.01
	cutoffLevel       = math.Sqrt2 / 2 // -3 dB
)

// describe prints the DC gain, step settling time and -3 dB cutoff of every
// channel chain. The chains are reset afterwards.
func describe(w io.Writer, p *pipeline.Pipeline, sampleRate float64, blockSize int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tStages\tDC Gain\tSettling [samples]\tSettling [s]\tCutoff -3dB [Hz]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-------\t------\t-------\t------------------\t------------\t----------------\n"); err != nil {
		return err
	}

	for _, name := range p.Channels() {
		chain, _ := p.Chain(name)

		settling := "-"
		seconds := "-"
		n, ok, err := response.SettlingSamples(chain, settlingTolerance, describeLength)
		if err != nil {
			return err
		}
		if ok {
			settling = fmt.Sprintf("%d", n)
			seconds = fmt.Sprintf("%.1f", float64(n)/sampleRate)
		}

		cutoff := "-"
		spec, err := response.MagnitudeSpectrum(chain,
			core.WithSampleRate(sampleRate),
			core.WithBlockSize(blockSize),
		)
		if err != nil {
			return err
		}
		if fc := spec.CutoffFrequency(cutoffLevel); !math.IsNaN(fc) {
			cutoff = fmt.Sprintf("%.4f", fc)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%s\t%s\t%s\n",
			name,
			chain.Len(),
			response.DCGain(chain, describeLength),
			settling,
			seconds,
			cutoff,
		); err != nil {
			return err
		}
	}
	p.Reset()
	return tw.Flush()
}
