// Command contour offsets shapes, traces envelopes and intersects regions,
// printing the results as SVG path data.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tdewolff/argp"
	"honnef.co/go/contour"
)

type Main struct{}

type Offset struct {
	Left       float64 `short:"l" default:"1" desc:"Offset distance on the left"`
	Right      float64 `short:"r" default:"1" desc:"Offset distance on the right"`
	Side       string  `short:"s" default:"both" desc:"Side to offset: left, right or both"`
	Chamfer    bool    `desc:"Chamfer corners instead of rounding them"`
	Degenerate bool    `desc:"Pass degenerate offsets through instead of failing"`
	Precision  int     `short:"p" default:"0" desc:"Maximum number of decimals in the output"`
	Input      string  `index:"0" desc:"Shapes: SVG path data or circle:x,y,r, separated by semicolons"`
}

type Envelope struct {
	X         float64 `short:"x" desc:"X coordinate of the inside point"`
	Y         float64 `short:"y" desc:"Y coordinate of the inside point"`
	Precision int     `short:"p" default:"0" desc:"Maximum number of decimals in the output"`
	Input     string  `index:"0" desc:"Shapes: SVG path data or circle:x,y,r, separated by semicolons"`
}

type Loops struct {
	Outside1  bool   `desc:"Use the outside of the first loop"`
	Outside2  bool   `desc:"Use the outside of the second loop"`
	Precision int    `short:"p" default:"0" desc:"Maximum number of decimals in the output"`
	First     string `index:"0" desc:"First loop"`
	Second    string `index:"1" desc:"Second loop"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Offset, envelope and region toolkit for planar curves")
	root.AddCmd(&Offset{}, "offset", "Offset shapes to either side")
	root.AddCmd(&Envelope{}, "envelope", "Trace the boundary around a point")
	root.AddCmd(&Loops{}, "loops", "Intersect the regions of two loops")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func printSVG(curves []contour.Curve, precision int) error {
	if err := contour.WriteSVG(os.Stdout, curves, contour.SVGOptions{MaxPrecision: precision}); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func (cmd *Offset) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	var side contour.Side
	switch cmd.Side {
	case "left":
		side = contour.SideLeft
	case "right":
		side = contour.SideRight
	case "both":
		side = contour.SideBoth
	default:
		fmt.Println("ERROR: side must be left, right or both")
		return argp.ShowUsage
	}
	shapes, err := parseShapes(cmd.Input)
	if err != nil {
		return err
	}
	p := contour.EquidParams{
		RadiusLeft:        cmd.Left,
		RadiusRight:       cmd.Right,
		Side:              side,
		ArcMode:           !cmd.Chamfer,
		DegenerateAllowed: cmd.Degenerate,
	}
	var out []contour.Curve
	var errs []error
	for _, s := range shapes {
		left, right, err := contour.Equid(s, p, contour.DefaultTolerance)
		if err != nil {
			name, _ := contour.NameOf(s)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		out = append(out, contour.NewContour(left...), contour.NewContour(right...))
	}
	if err := printSVG(out, cmd.Precision); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func (cmd *Envelope) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	shapes, err := parseShapes(cmd.Input)
	if err != nil {
		return err
	}
	c, err := contour.BuildEnvelopeContour(contour.Pt(cmd.X, cmd.Y), shapes, contour.DefaultTolerance)
	if err != nil {
		return err
	}
	return printSVG([]contour.Curve{c}, cmd.Precision)
}

func (cmd *Loops) Run() error {
	if cmd.First == "" || cmd.Second == "" {
		return argp.ShowUsage
	}
	first, err := parseLoop(cmd.First)
	if err != nil {
		return fmt.Errorf("first loop: %w", err)
	}
	second, err := parseLoop(cmd.Second)
	if err != nil {
		return fmt.Errorf("second loop: %w", err)
	}
	res, loops := contour.BooleanIntLoops(first, !cmd.Outside1, second, !cmd.Outside2, contour.DefaultTolerance)
	fmt.Println(res)
	switch res {
	case contour.LoopsError:
		return errors.New("loops could not be combined")
	case contour.LoopsFirstCurve:
		loops = []contour.Curve{first}
	case contour.LoopsSecondCurve:
		loops = []contour.Curve{second}
	}
	return printSVG(loops, cmd.Precision)
}

func parseLoop(s string) (contour.Curve, error) {
	shapes, err := parseShapes(s)
	if err != nil {
		return nil, err
	}
	if len(shapes) != 1 || !shapes[0].Closed() {
		return nil, contour.ErrNotClosed
	}
	return shapes[0], nil
}
