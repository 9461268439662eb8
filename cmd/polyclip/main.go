// Command polyclip reads a subject and a clip multipolygon from JSON
// files, computes one of the four Boolean set operations between them,
// and writes the result multipolygon to stdout as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/mikenye/polyclip/options"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/polygon"
	"github.com/mikenye/polyclip/types"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "polyclip",
		Usage:     "Computes a Boolean set operation between two multipolygons",
		UsageText: "polyclip --op <intersection|union|difference|xor> --subject <file> --clip <file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "The Boolean set operation to perform",
				Value:    "union",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "subject",
				Usage:    "Path to the subject multipolygon JSON file",
				Required: true,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "clip",
				Usage:    "Path to the clip multipolygon JSON file",
				Required: true,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "accurate",
				Usage:    "Use exact rational arithmetic instead of epsilon-tolerant float64",
				Value:    true,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "Tolerance used when --accurate=false",
				Value:    1e-9,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	op, err := parseOperation(cmd.String("op"))
	if err != nil {
		return err
	}

	subject, err := readMultiPolygon(cmd.String("subject"))
	if err != nil {
		return fmt.Errorf("reading subject: %w", err)
	}
	clip, err := readMultiPolygon(cmd.String("clip"))
	if err != nil {
		return fmt.Errorf("reading clip: %w", err)
	}

	result, err := polygon.Compute(op, subject, clip,
		options.WithAccurate(cmd.Bool("accurate")),
		options.WithEpsilon(cmd.Float("epsilon")),
	)
	if err != nil {
		return err
	}

	b, err := json.Marshal(toJSONMultiPolygon(result))
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func parseOperation(s string) (types.Operation, error) {
	switch s {
	case "intersection":
		return types.OperationIntersection, nil
	case "union":
		return types.OperationUnion, nil
	case "difference":
		return types.OperationDifference, nil
	case "xor":
		return types.OperationXor, nil
	default:
		return 0, fmt.Errorf("unrecognised operation %q", s)
	}
}

// jsonPoint, jsonContour and jsonPolygon are the on-disk shapes for
// --subject/--clip files and the result written to stdout. point.Point
// deliberately carries no JSON tags of its own (its fields are
// unexported, so two points built from the same coordinates always
// compare equal); these DTOs are the boundary where JSON meets the
// module's internal types.
type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonContour struct {
	Points []jsonPoint `json:"points"`
}

type jsonPolygon struct {
	Outer jsonContour   `json:"outer"`
	Holes []jsonContour `json:"holes,omitempty"`
}

func readMultiPolygon(path string) (polygon.MultiPolygon[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []jsonPolygon
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, err
	}

	out := make(polygon.MultiPolygon[float64], len(raw))
	for i, p := range raw {
		out[i] = polygon.Polygon[float64]{
			Outer: fromJSONContour(p.Outer),
		}
		for _, h := range p.Holes {
			out[i].Holes = append(out[i].Holes, fromJSONContour(h))
		}
	}
	return out, nil
}

func fromJSONContour(c jsonContour) polygon.Contour[float64] {
	pts := make([]point.Point[float64], len(c.Points))
	for i, p := range c.Points {
		pts[i] = point.New(p.X, p.Y)
	}
	return polygon.Contour[float64]{Points: pts}
}

func toJSONMultiPolygon(m polygon.MultiPolygon[float64]) []jsonPolygon {
	out := make([]jsonPolygon, len(m))
	for i, p := range m {
		out[i] = jsonPolygon{Outer: toJSONContour(p.Outer)}
		for _, h := range p.Holes {
			out[i].Holes = append(out[i].Holes, toJSONContour(h))
		}
	}
	return out
}

func toJSONContour(c polygon.Contour[float64]) jsonContour {
	pts := make([]jsonPoint, len(c.Points))
	for i, p := range c.Points {
		pts[i] = jsonPoint{X: p.X(), Y: p.Y()}
	}
	return jsonContour{Points: pts}
}
