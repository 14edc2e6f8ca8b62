// Command tfdrawer applies piecewise-linear transfer functions to images.
//
// It is the non-interactive counterpart of the transfer function drawing
// session: point lists printed during editing can be fed back through the
// -points flag to reproduce the same output at full resolution.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tfdrawer "github.com/Kaiserouo/Image-Transfer-Function-Drawer-GUI"
	"github.com/Kaiserouo/Image-Transfer-Function-Drawer-GUI/internal/imageio"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "apply":
		if err := runApply(os.Args[2:]); err != nil {
			fail(err)
		}
	case "resize":
		if err := runResize(os.Args[2:]); err != nil {
			fail(err)
		}
	case "table":
		if err := runTable(os.Args[2:]); err != nil {
			fail(err)
		}
	case "points":
		if err := runPoints(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: tfdrawer <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, `  apply  -in input.png -out output.png -points "[(x,y), ...]" [-gray] [-strategy luminance|per-channel|ratio]`)
	fmt.Fprintln(os.Stderr, "  resize -in input.png -out output.png -factor 0.5")
	fmt.Fprintln(os.Stderr, `  table  -points "[(x,y), ...]"`)
	fmt.Fprintln(os.Stderr, `  points -points "[(x,y), ...]" [-add x,y] [-remove i]`)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	pointsText := fs.String("points", "[]", "inflection points")
	gray := fs.Bool("gray", false, "load input as grayscale")
	strategyName := fs.String("strategy", "", "color strategy (default: luminance)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	strategy := tfdrawer.StrategyAuto
	if *strategyName != "" {
		s, err := tfdrawer.ParseStrategy(*strategyName)
		if err != nil {
			return err
		}
		strategy = s
	}

	img, err := imageio.Load(*inPath, *gray)
	if err != nil {
		return err
	}
	engine, err := tfdrawer.NewEngine(img, func(o *tfdrawer.Options) {
		o.SeedText = *pointsText
		o.Strategy = strategy
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Inflection points:", tfdrawer.FormatPoints(engine.Points()))
	return imageio.Save(*outPath, engine.Render(img))
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	outPath := fs.String("out", "", "output image")
	factor := fs.Float64("factor", 0, "uniform scale factor")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" || *factor <= 0 {
		return errors.New("missing required arguments")
	}
	return tfdrawer.ScaleFile(*inPath, *outPath, *factor)
}

func runTable(args []string) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	pointsText := fs.String("points", "[]", "inflection points")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pts, err := tfdrawer.ParsePoints(*pointsText)
	if err != nil {
		return err
	}
	table := tfdrawer.BuildTable(pts)
	for i, v := range table {
		if i%16 == 0 && i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, "%4d", v)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

func runPoints(args []string) error {
	fs := flag.NewFlagSet("points", flag.ContinueOnError)
	pointsText := fs.String("points", "[]", "inflection points")
	addSpec := fs.String("add", "", "add a point, as x,y")
	removeIdx := fs.Int("remove", -1, "remove the point at this index")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pts, err := tfdrawer.ParsePoints(*pointsText)
	if err != nil {
		return err
	}
	set := tfdrawer.NewSeededPointSet(pts)
	if *addSpec != "" {
		var x, y int
		if _, err := fmt.Sscanf(*addSpec, "%d,%d", &x, &y); err != nil {
			return fmt.Errorf("bad -add value %q: %w", *addSpec, err)
		}
		set.Add(x, y)
	}
	if *removeIdx >= 0 {
		set.Remove(*removeIdx)
	}
	fmt.Fprintln(os.Stdout, "Inflection points:", set)
	return nil
}
