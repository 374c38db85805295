// Command bench measures sign/verify latency for one scheme (chosen with
// -scheme) across a range of ring sizes and renders the results as a PNG
// line chart.
package main

import (
	"crypto/rand"
	"crypto/sha512"
	"flag"
	"fmt"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/anupsv/ring-signatures/ring"
)

type dataPoint struct {
	ringSize int
	signNs   float64
	verifyNs float64
}

func main() {
	scheme := flag.String("scheme", "sag", "scheme to benchmark: sag, blsag, mlsag, clsag")
	maxRing := flag.Int("max-ring", 64, "largest ring size to benchmark")
	step := flag.Int("step", 8, "ring size increment")
	iterations := flag.Int("iterations", 5, "iterations averaged per ring size")
	output := flag.String("output", "bench.png", "output PNG path")
	flag.Parse()

	if *maxRing < 1 || *step < 1 {
		fmt.Fprintln(os.Stderr, "bench: -max-ring and -step must be positive")
		os.Exit(1)
	}

	var points []dataPoint
	for n := 1; n <= *maxRing; n += *step {
		p, err := benchmarkSize(*scheme, n, *iterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("ring=%-4d sign=%10s verify=%10s\n", n, time.Duration(p.signNs), time.Duration(p.verifyNs))
		points = append(points, p)
	}

	if err := renderChart(*scheme, points, *output); err != nil {
		fmt.Fprintf(os.Stderr, "bench: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *output)
}

func benchmarkSize(scheme string, n, iterations int) (dataPoint, error) {
	var signTotal, verifyTotal time.Duration
	for i := 0; i < iterations; i++ {
		signDur, verifyDur, err := benchmarkOnce(scheme, n)
		if err != nil {
			return dataPoint{}, err
		}
		signTotal += signDur
		verifyTotal += verifyDur
	}
	return dataPoint{
		ringSize: n,
		signNs:   float64(signTotal) / float64(iterations),
		verifyNs: float64(verifyTotal) / float64(iterations),
	}, nil
}

func benchmarkOnce(scheme string, n int) (time.Duration, time.Duration, error) {
	message := []byte("benchmark message")
	switch scheme {
	case "sag":
		secret, err := ring.NewSecret(rand.Reader)
		if err != nil {
			return 0, 0, err
		}
		decoys, _, err := ring.NewDecoyRing(rand.Reader, n-1)
		if err != nil {
			return 0, 0, err
		}
		start := time.Now()
		sig, err := ring.SAGSign(rand.Reader, sha512.New, secret, decoys, message)
		signDur := time.Since(start)
		if err != nil {
			return 0, 0, err
		}
		start = time.Now()
		sig.Verify(sha512.New, message)
		return signDur, time.Since(start), nil

	case "blsag":
		secret, err := ring.NewSecret(rand.Reader)
		if err != nil {
			return 0, 0, err
		}
		decoys, _, err := ring.NewDecoyRing(rand.Reader, n-1)
		if err != nil {
			return 0, 0, err
		}
		start := time.Now()
		sig, err := ring.BLSAGSign(rand.Reader, sha512.New, secret, decoys, message)
		signDur := time.Since(start)
		if err != nil {
			return 0, 0, err
		}
		start = time.Now()
		sig.Verify(sha512.New, message)
		return signDur, time.Since(start), nil

	case "mlsag", "clsag":
		secretA, err := ring.NewSecret(rand.Reader)
		if err != nil {
			return 0, 0, err
		}
		secretB, err := ring.NewSecret(rand.Reader)
		if err != nil {
			return 0, 0, err
		}
		secrets := []ring.Secret{secretA, secretB}
		rows := n - 1
		if rows < 0 {
			rows = 0
		}
		decoyRows, err := ring.NewDecoyRings(rand.Reader, rows, 2)
		if err != nil {
			return 0, 0, err
		}
		if scheme == "mlsag" {
			start := time.Now()
			sig, err := ring.MLSAGSign(rand.Reader, sha512.New, secrets, decoyRows, message)
			signDur := time.Since(start)
			if err != nil {
				return 0, 0, err
			}
			start = time.Now()
			sig.Verify(sha512.New, message)
			return signDur, time.Since(start), nil
		}
		start := time.Now()
		sig, err := ring.CLSAGSign(rand.Reader, sha512.New, secrets, decoyRows, message)
		signDur := time.Since(start)
		if err != nil {
			return 0, 0, err
		}
		start = time.Now()
		sig.Verify(sha512.New, message)
		return signDur, time.Since(start), nil

	default:
		return 0, 0, fmt.Errorf("unknown scheme %q", scheme)
	}
}

func renderChart(scheme string, points []dataPoint, output string) error {
	xs := make([]float64, len(points))
	signYs := make([]float64, len(points))
	verifyYs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.ringSize)
		signYs[i] = p.signNs / float64(time.Microsecond)
		verifyYs[i] = p.verifyNs / float64(time.Microsecond)
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("%s latency vs ring size", scheme),
		XAxis: chart.XAxis{Name: "ring size"},
		YAxis: chart.YAxis{Name: "microseconds"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "sign",
				XValues: xs,
				YValues: signYs,
			},
			chart.ContinuousSeries{
				Name:    "verify",
				XValues: xs,
				YValues: verifyYs,
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}
