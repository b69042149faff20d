// tricast intersects rays with triangles from the command line, one at a
// time or from a YAML case file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"row-major/tricast/casepack"
	"row-major/tricast/ray"
	"row-major/tricast/vmath/scalar"
	"row-major/tricast/vmath/vec3"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var cmdRoot = &cobra.Command{
	Use:          "tricast",
	Short:        "Ray/triangle intersection tool",
	SilenceUsage: true,
}

var (
	epsilon         float64
	singlePrecision bool
)

func init() {
	cmdRoot.PersistentFlags().Float64Var(&epsilon, "epsilon", scalar.DefaultEpsilon, "Determinant magnitude below which a ray counts as parallel to the triangle.")
	cmdRoot.PersistentFlags().BoolVar(&singlePrecision, "single-precision", false, "Evaluate in float32 (mathgl) instead of float64.")
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func triple(name string, vals []float64) ([3]float64, error) {
	if len(vals) != 3 {
		return [3]float64{}, fmt.Errorf("--%s needs 3 comma-separated values, got %d", name, len(vals))
	}
	return [3]float64{vals[0], vals[1], vals[2]}, nil
}

var cmdIntersect = &cobra.Command{
	Use:   "intersect",
	Short: "Intersect one ray with one triangle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := &casepack.Case{
			Name: "intersect",
			Ray: casepack.RaySpec{
				Normalize: intersectNormalize,
			},
		}

		origin, err := triple("origin", intersectOrigin)
		if err != nil {
			return err
		}
		c.Ray.Origin = vec3.Point[float64](origin)

		if cmd.Flags().Changed("direction") {
			d, err := triple("direction", intersectDirection)
			if err != nil {
				return err
			}
			dir := vec3.T[float64](d)
			c.Ray.Direction = &dir
		}

		if cmd.Flags().Changed("toward") {
			p, err := triple("toward", intersectToward)
			if err != nil {
				return err
			}
			toward := vec3.Point[float64](p)
			c.Ray.Toward = &toward
		}

		var vertices [3][3]float64
		for i, v := range [][]float64{intersectP0, intersectP1, intersectP2} {
			if vertices[i], err = triple(fmt.Sprintf("p%d", i), v); err != nil {
				return err
			}
		}
		c.Triangle.P0 = vec3.Point[float64](vertices[0])
		c.Triangle.P1 = vec3.Point[float64](vertices[1])
		c.Triangle.P2 = vec3.Point[float64](vertices[2])

		if intersectForward {
			fwd := ray.Forward[float64]()
			c.Span = &fwd
		}

		res, err := casepack.Evaluate(c, epsilon, singlePrecision)
		if err != nil {
			return fmt.Errorf("while evaluating: %w", err)
		}

		if !res.Hit {
			fmt.Fprintln(cmd.OutOrStdout(), "miss")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "hit %g %g %g (t=%g u=%g v=%g)\n", res.Point[0], res.Point[1], res.Point[2], res.T, res.U, res.V)
		return nil
	},
}

var (
	intersectOrigin    []float64
	intersectDirection []float64
	intersectToward    []float64
	intersectP0        []float64
	intersectP1        []float64
	intersectP2        []float64
	intersectNormalize bool
	intersectForward   bool
)

func init() {
	cmdIntersect.Flags().Float64SliceVar(&intersectOrigin, "origin", nil, "Ray origin x,y,z.")
	cmdIntersect.Flags().Float64SliceVar(&intersectDirection, "direction", nil, "Ray direction x,y,z.")
	cmdIntersect.Flags().Float64SliceVar(&intersectToward, "toward", nil, "Second point on the ray x,y,z; direction is toward minus origin.")
	cmdIntersect.Flags().Float64SliceVar(&intersectP0, "p0", nil, "First triangle vertex x,y,z.")
	cmdIntersect.Flags().Float64SliceVar(&intersectP1, "p1", nil, "Second triangle vertex x,y,z.")
	cmdIntersect.Flags().Float64SliceVar(&intersectP2, "p2", nil, "Third triangle vertex x,y,z.")
	cmdIntersect.Flags().BoolVar(&intersectNormalize, "normalize", false, "Normalize the ray direction first.")
	cmdIntersect.Flags().BoolVar(&intersectForward, "forward", false, "Only report hits in front of the origin.")
}

var cmdAxis = &cobra.Command{
	Use:   "axis",
	Short: "Find the ray parameter at which one coordinate takes a value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, err := triple("origin", axisOrigin)
		if err != nil {
			return err
		}
		direction, err := triple("direction", axisDirection)
		if err != nil {
			return err
		}
		axis, err := ray.ParseAxis(axisName)
		if err != nil {
			return err
		}

		r := ray.New3(vec3.Point[float64](origin), vec3.T[float64](direction))
		t, ok := ray.AxisParameterWhere(r, axis, axisValue)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}

		p := r.At(t)
		fmt.Fprintf(cmd.OutOrStdout(), "t=%g at (%g, %g, %g)\n", t, p[0], p[1], p[2])
		return nil
	},
}

var (
	axisOrigin    []float64
	axisDirection []float64
	axisName      string
	axisValue     float64
)

func init() {
	cmdAxis.Flags().Float64SliceVar(&axisOrigin, "origin", nil, "Ray origin x,y,z.")
	cmdAxis.Flags().Float64SliceVar(&axisDirection, "direction", nil, "Ray direction x,y,z.")
	cmdAxis.Flags().StringVar(&axisName, "axis", "x", "Axis to solve along: x, y or z.")
	cmdAxis.Flags().Float64Var(&axisValue, "value", 0, "Target coordinate.")
}

var cmdRun = &cobra.Command{
	Use:   "run FILE",
	Short: "Evaluate a YAML case file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f, err := casepack.Load(args[0])
		if err != nil {
			return fmt.Errorf("while loading cases: %w", err)
		}
		if cmd.Flags().Changed("epsilon") {
			f.Epsilon = &epsilon
		}

		results, err := casepack.Run(ctx, f, casepack.Options{
			Parallelism:     runParallelism,
			SinglePrecision: singlePrecision,
		})
		if err != nil {
			return fmt.Errorf("while running cases: %w", err)
		}

		failed := 0
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r)
			if !r.Pass {
				failed++
			}
		}
		glog.Infof("Ran %d cases from %s, %d failed", len(results), args[0], failed)

		if failed != 0 {
			return fmt.Errorf("%d of %d cases failed", failed, len(results))
		}
		return nil
	},
}

var runParallelism int64

func init() {
	cmdRun.Flags().Int64Var(&runParallelism, "parallelism", int64(runtime.NumCPU()), "Maximum number of cases evaluated at once.")
}

func init() {
	cmdRoot.AddCommand(cmdIntersect, cmdAxis, cmdRun)
}

func main() {
	// glog checks flag.Parsed before logging; cobra sets the values itself.
	flag.CommandLine.Parse([]string{})
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	if err := cmdRoot.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
