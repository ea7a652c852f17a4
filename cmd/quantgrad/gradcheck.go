package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/urfave/cli/v3"

	"github.com/qat-ml/quantgrad/backend/cpu"
	"github.com/qat-ml/quantgrad/quantsim"
	"github.com/qat-ml/quantgrad/tensor"
)

func gradcheckCmd() *cli.Command {
	var (
		configPath string
		size       int64
		seed       int64
		tolerance  float64
	)

	return &cli.Command{
		Name:  "gradcheck",
		Usage: "Check engine gradients against a float64 reference",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to quantizer YAML config",
				Required:    true,
				Destination: &configPath,
			},
			&cli.Int64Flag{
				Name:        "size",
				Usage:       "number of sampled input elements per quantizer",
				Value:       1024,
				Destination: &size,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "RNG seed for input sampling",
				Value:       42,
				Destination: &seed,
			},
			&cli.Float64Flag{
				Name:        "tolerance",
				Usage:       "maximum allowed relative deviation",
				Value:       1e-3,
				Destination: &tolerance,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := quantsim.LoadConfig(configPath)
			if err != nil {
				return err
			}

			backend := cpu.New()
			rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: reproducible sampling
			failed := 0

			for _, q := range cfg.Quantizers {
				dev, mse, err := checkQuantizer(&q, backend, rng, int(size))
				if err != nil {
					return fmt.Errorf("quantizer %s: %w", q.Name, err)
				}

				status := "ok"
				if dev > tolerance {
					status = "FAIL"
					failed++
				}
				fmt.Printf("%-24s bw=%d symmetric=%-5t maxdev=%.3e mse=%.3e %s\n",
					q.Name, q.BitWidth, q.Symmetric, dev, mse, status)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d quantizers exceeded tolerance %g", failed, len(cfg.Quantizers), tolerance)
			}
			return nil
		},
	}
}

// checkQuantizer samples inputs spanning the encoding range plus margin,
// runs the engine, and reports the worst relative deviation from the
// float64 reference together with the forward quantization MSE.
func checkQuantizer(q *quantsim.QuantizerConfig, backend *cpu.Backend, rng *rand.Rand, n int) (dev, mse float64, err error) {
	e := q.Encoding()
	c := e.Clamped()

	// Sample past both boundaries so clipped elements are exercised.
	width := c.Max - c.Min
	xData := make([]float64, n)
	x32 := make([]float32, n)
	g32 := make([]float32, n)
	for i := range xData {
		xData[i] = c.Min - 0.5*width + 2*width*rng.Float64()
		x32[i] = float32(xData[i])
		g32[i] = 1
	}

	x, err := tensor.FromSlice(x32, tensor.Shape{n}, backend)
	if err != nil {
		return 0, 0, err
	}
	grad, err := tensor.FromSlice(g32, tensor.Shape{n}, backend)
	if err != nil {
		return 0, 0, err
	}
	encMin := tensor.Scalar(float32(e.Min), backend)
	encMax := tensor.Scalar(float32(e.Max), backend)

	dx, dMin, dMax := quantsim.RangeLearningGrad(
		x.Raw(), q.BitWidth, quantsim.OpModeQuantDequant,
		encMin.Raw(), encMax.Raw(), q.Symmetric, grad.Raw(), backend)

	gData := make([]float64, n)
	for i := range gData {
		gData[i] = float64(g32[i])
	}
	wantDx, wantMin, wantMax := referenceGradients(xData, gData, e)

	for i, v := range dx.AsFloat32() {
		dev = math.Max(dev, relDev(float64(v), wantDx[i]))
	}
	dev = math.Max(dev, relDev(dMin.AsFloat64()[0], wantMin))
	dev = math.Max(dev, relDev(dMax.AsFloat64()[0], wantMax))

	return dev, quantizationMSE(xData, e), nil
}

// relDev is the absolute deviation scaled by the reference magnitude,
// floored at 1 so near-zero references compare absolutely.
func relDev(got, want float64) float64 {
	return math.Abs(got-want) / math.Max(1, math.Abs(want))
}
