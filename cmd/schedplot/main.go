// Command schedplot traces a learning rate schedule and renders the curve.
//
// The schedule is described either by flags or by a YAML file:
//
//	schedplot -policy onecycle -max-lr 0.01 -steps 1000 -out lr.png
//	schedplot -config sched.yaml -out lr.png
//
// A sample YAML config:
//
//	policy: onecycle
//	max_lr: 0.01
//	total_steps: 1000
//	pct_start: 0.3
//	max_momentum: 0.95
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/born-ml/sched/optim"
	"github.com/born-ml/sched/schedule"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML schedule config; overrides the policy flags")
		policy     = flag.String("policy", "onecycle", "schedule policy: onecycle or cosine")
		steps      = flag.Int("steps", 1000, "total steps (one-cycle) or period (cosine)")
		maxLR      = flag.Float64("max-lr", 0.01, "peak LR (one-cycle) or base LR (cosine)")
		divFactor  = flag.Float64("div-factor", 0, "initial LR divisor, one-cycle only (0 = default)")
		pctStart   = flag.Float64("pct-start", 0, "warmup fraction, one-cycle only (0 = default)")
		minLR      = flag.Float64("min-lr", 0, "floor LR, cosine only")
		restarts   = flag.Bool("restarts", false, "warm restarts, cosine only")
		out        = flag.String("out", "lr.png", "output image (.png or .svg)")
		dump       = flag.Bool("dump", false, "print the traced LR values to stdout")
	)
	flag.Parse()

	config, err := resolveConfig(*configPath, *policy, *steps, *maxLR, *divFactor, *pctStart, *minLR, *restarts)
	if err != nil {
		fatal(err)
	}

	sched, err := config.build()
	if err != nil {
		fatal(err)
	}

	lrs, momenta := trace(sched, config.traceSteps())
	if *dump {
		for s, lr := range lrs {
			fmt.Printf("%d\t%g\n", s, lr)
		}
	}

	if err := render(lrs, momenta, *out); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s (%d steps)\n", *out, len(lrs)-1)
}

func resolveConfig(path, policy string, steps int, maxLR, divFactor, pctStart, minLR float64, restarts bool) (Config, error) {
	if path != "" {
		return loadConfig(path)
	}
	config := Config{
		Policy:      policy,
		MaxLR:       maxLR,
		TotalSteps:  steps,
		DivFactor:   divFactor,
		PctStart:    pctStart,
		BaseLR:      maxLR,
		MinLR:       minLR,
		PeriodSteps: steps,
		Restarts:    restarts,
	}
	return config, nil
}

// trace drives the scheduler against a throwaway optimizer and records the
// LR (and momentum, for momentum-cycling schedules) at every step,
// including step 0.
func trace(sched schedule.Scheduler, steps int) (lrs, momenta []float64) {
	probe := optim.NewSGD([]float64{0}, optim.SGDConfig{LR: sched.GetLR()})

	oneCycle, _ := sched.(*schedule.OneCycle)
	cycling := oneCycle != nil && oneCycle.GetMomentum() > 0

	lrs = append(lrs, sched.GetLR())
	if cycling {
		momenta = append(momenta, oneCycle.GetMomentum())
	}
	for s := 0; s < steps; s++ {
		lrs = append(lrs, sched.Step(probe))
		if cycling {
			momenta = append(momenta, oneCycle.GetMomentum())
		}
	}
	return lrs, momenta
}

func render(lrs, momenta []float64, out string) error {
	p := plot.New()
	p.Title.Text = "Learning rate schedule"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "value"

	lrLine, err := plotter.NewLine(points(lrs))
	if err != nil {
		return fmt.Errorf("building LR line: %w", err)
	}
	p.Add(lrLine)
	p.Legend.Add("lr", lrLine)

	if len(momenta) > 0 {
		momentumLine, err := plotter.NewLine(points(momenta))
		if err != nil {
			return fmt.Errorf("building momentum line: %w", err)
		}
		momentumLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(momentumLine)
		p.Legend.Add("momentum", momentumLine)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, out); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

func points(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "schedplot:", err)
	os.Exit(1)
}
