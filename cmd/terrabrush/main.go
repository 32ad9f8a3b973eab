// Command terrabrush replays brush strokes over a ground plane and reports
// the resulting heights.
//
//	terrabrush -list
//	terrabrush -preset raise.yaml -from -10,0 -to 10,0 -strokes 3
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/borkshop/terrabrush/brush"
	"github.com/borkshop/terrabrush/brushconfig"
	"github.com/borkshop/terrabrush/noise"
	"github.com/borkshop/terrabrush/terrain"
	"github.com/borkshop/terrabrush/vec"
)

type point vec.Vec2

func (p *point) String() string { return fmt.Sprintf("%v,%v", p.X, p.Z) }

func (p *point) Set(s string) error {
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("expected x,z, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return err
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(zs), 32)
	if err != nil {
		return err
	}
	p.X, p.Z = float32(x), float32(z)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		list    = flag.Bool("list", false, "print every noise algorithm and exit")
		preset  = flag.String("preset", "", "brush preset file; defaults to raising by 1")
		size    = flag.Float64("size", 40, "plane width and depth")
		subdiv  = flag.Int("subdivisions", 12, "plane subdivisions")
		steps   = flag.Int("steps", 20, "applications per stroke")
		radius  = flag.Float64("radius", 0, "brush radius; defaults to the preset's")
		strokes = flag.Int("strokes", 1, "number of strokes")
		verbose = flag.Bool("v", false, "debug logging")
		from    = point{X: -10}
		to      = point{X: 10}
	)
	flag.Var(&from, "from", "stroke start x,z")
	flag.Var(&to, "to", "stroke end x,z")
	flag.Parse()

	if *list {
		for _, alg := range noise.All() {
			fmt.Println(alg)
		}
		return nil
	}

	if *verbose {
		brush.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var (
		b    brush.Brush = brush.HeightValue{Delta: 1}
		opts []brush.Option
		r    = float32(brushconfig.DefaultRadius)
	)
	if *preset != "" {
		abs, err := filepath.Abs(*preset)
		if err != nil {
			return err
		}
		p, err := brushconfig.Load(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
		if err != nil {
			return err
		}
		b, opts, r = p.Brush(), p.Options(), p.Radius
	}
	if *radius > 0 {
		r = float32(*radius)
	}

	opt := terrain.DefaultPlaneOptions()
	opt.Width, opt.Depth = float32(*size), float32(*size)
	opt.Subdivisions = *subdiv
	plane := terrain.NewPlane(opt)

	eng := brush.NewEngine(plane, plane, b, opts...)
	log.Printf("brush %T policy %v radius %v over %v vertices", b, eng.Policy(), r, plane.Len())

	start := vec.V3(from.X, 0, from.Z)
	end := vec.V3(to.X, 0, to.Z)
	n := *steps
	if n < 1 {
		n = 1
	}
	for i := 0; i < *strokes; i++ {
		var mutated, released int
		eng.Started()
		for j := 0; j <= n; j++ {
			eng.Apply(start.Lerp(end, float32(j)/float32(n)), r)
			last := eng.LastApply()
			mutated += last.Mutated
			released += last.Released
		}
		eng.Done()

		stats := terrain.HeightStats(plane)
		log.Printf("stroke %v: mutated %v released %v; height min %.3f max %.3f spread %.3f mean %.3f",
			i+1, mutated, released, stats.Min, stats.Max, stats.Spread(), stats.Mean())
	}
	return nil
}
