// Package casepack loads ray/triangle cases from YAML and evaluates them.
//
// Each case is one ray against one triangle.  Cases are independent and are
// evaluated concurrently; results come back in file order.
package casepack

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"row-major/tricast/contact"
	"row-major/tricast/geometry"
	"row-major/tricast/intersect"
	"row-major/tricast/ray"
	"row-major/tricast/vmath/scalar"
	"row-major/tricast/vmath/vec3"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v3"
)

// DefaultPointTolerance is used when a point expectation gives no
// tolerance.
const DefaultPointTolerance = 1.0e-6

var (
	ErrNoDirection          = errors.New("ray needs one of direction or toward")
	ErrAmbiguousDirection   = errors.New("ray has both direction and toward")
	ErrNoExpectation        = errors.New("want needs one of point or miss")
	ErrAmbiguousExpectation = errors.New("want has both point and miss")
)

type File struct {
	// Epsilon overrides the determinant tolerance for every case.
	Epsilon *float64 `yaml:"epsilon"`
	Cases   []Case   `yaml:"cases"`
}

type Case struct {
	Name     string                      `yaml:"name"`
	Triangle geometry.Triangle3[float64] `yaml:"triangle"`
	Ray      RaySpec                     `yaml:"ray"`

	// Span restricts the hit to a range of ray parameters.  Nil means the
	// whole line.
	Span *ray.Span[float64] `yaml:"span"`

	// Want is optional; a case without one always passes.
	Want *Expectation `yaml:"want"`
}

// RaySpec gives a ray either by direction or by a second point.
type RaySpec struct {
	Origin    vec3.Point[float64]  `yaml:"origin"`
	Direction *vec3.T[float64]     `yaml:"direction"`
	Toward    *vec3.Point[float64] `yaml:"toward"`
	Normalize bool                 `yaml:"normalize"`
}

type Expectation struct {
	Point     *vec3.Point[float64] `yaml:"point"`
	Miss      bool                 `yaml:"miss"`
	Tolerance float64              `yaml:"tolerance"`
}

type Options struct {
	// Parallelism bounds the number of cases evaluated at once.  Values
	// below one mean one.
	Parallelism int64

	// SinglePrecision evaluates through mgl32 instead of float64 vectors.
	SinglePrecision bool
}

type Result struct {
	Name  string
	Hit   bool
	Point vec3.Point[float64]
	T     float64
	U     float64
	V     float64
	Pass  bool
}

func (r Result) String() string {
	verdict := "PASS"
	if !r.Pass {
		verdict = "FAIL"
	}
	if !r.Hit {
		return fmt.Sprintf("%s %s: miss", verdict, r.Name)
	}
	return fmt.Sprintf("%s %s: hit (%g, %g, %g) t=%g u=%g v=%g", verdict, r.Name, r.Point[0], r.Point[1], r.Point[2], r.T, r.U, r.V)
}

func (s *RaySpec) Validate() error {
	switch {
	case s.Direction == nil && s.Toward == nil:
		return ErrNoDirection
	case s.Direction != nil && s.Toward != nil:
		return ErrAmbiguousDirection
	}
	return nil
}

func (w *Expectation) Validate() error {
	switch {
	case w.Point == nil && !w.Miss:
		return ErrNoExpectation
	case w.Point != nil && w.Miss:
		return ErrAmbiguousExpectation
	}
	return nil
}

func (c *Case) Validate() error {
	if err := c.Ray.Validate(); err != nil {
		return fmt.Errorf("while validating ray: %w", err)
	}
	if c.Want != nil {
		if err := c.Want.Validate(); err != nil {
			return fmt.Errorf("while validating expectation: %w", err)
		}
	}
	return nil
}

func Load(fileName string) (*File, error) {
	fileBytes, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("while reading case file: %w", err)
	}

	f, err := Parse(fileBytes)
	if err != nil {
		return nil, fmt.Errorf("while parsing case file %q: %w", fileName, err)
	}
	return f, nil
}

func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("while unmarshaling cases: %w", err)
	}

	for i := range f.Cases {
		if err := f.Cases[i].Validate(); err != nil {
			return nil, fmt.Errorf("while validating case %d (%q): %w", i, f.Cases[i].Name, err)
		}
	}

	return f, nil
}

// Evaluate runs a single case with the given determinant tolerance.
func Evaluate(c *Case, epsilon float64, singlePrecision bool) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	var result Result
	if singlePrecision {
		hit, ok := evaluate32(c, epsilon)
		result = Result{
			Hit:   ok,
			Point: vec3.Point[float64]{float64(hit.P[0]), float64(hit.P[1]), float64(hit.P[2])},
			T:     float64(hit.T),
			U:     float64(hit.U),
			V:     float64(hit.V),
		}
	} else {
		hit, ok := evaluate64(c, epsilon)
		result = Result{
			Hit:   ok,
			Point: hit.P,
			T:     hit.T,
			U:     hit.U,
			V:     hit.V,
		}
	}

	result.Name = c.Name
	result.Pass = c.Want.met(result)
	return result, nil
}

func (w *Expectation) met(r Result) bool {
	if w == nil {
		return true
	}
	if w.Miss {
		return !r.Hit
	}
	if !r.Hit {
		return false
	}

	tol := w.Tolerance
	if tol == 0 {
		tol = DefaultPointTolerance
	}
	for i := range r.Point {
		if !(math.Abs(r.Point[i]-w.Point[i]) <= tol) {
			return false
		}
	}
	return true
}

func evaluate64(c *Case, epsilon float64) (contact.Contact[float64, vec3.Point[float64]], bool) {
	var r ray.Ray3[float64]
	if c.Ray.Toward != nil {
		r = ray.FromPoints3(c.Ray.Origin, *c.Ray.Toward)
	} else {
		r = ray.New3(c.Ray.Origin, *c.Ray.Direction)
	}
	if c.Ray.Normalize {
		r = ray.Normalize(r)
	}

	return evaluate(r, c.Triangle, c.Span, epsilon)
}

func evaluate32(c *Case, epsilon float64) (contact.Contact[float32, mgl32.Vec3], bool) {
	var r ray.Ray[float32, mgl32.Vec3, mgl32.Vec3]
	if c.Ray.Toward != nil {
		r = ray.FromPoints[float32, mgl32.Vec3, mgl32.Vec3](vec32(c.Ray.Origin), vec32(*c.Ray.Toward))
	} else {
		r = ray.New[float32](vec32(c.Ray.Origin), vec32(*c.Ray.Direction))
	}
	if c.Ray.Normalize {
		r = ray.Normalize(r)
	}

	tri := geometry.NewTriangle(vec32(c.Triangle.P0), vec32(c.Triangle.P1), vec32(c.Triangle.P2))
	return evaluate(r, tri, c.Span, epsilon)
}

func evaluate[S scalar.Float, P ray.Point[S, P, V], V intersect.Vector3[S, V]](r ray.Ray[S, P, V], tri geometry.Triangle[P], span *ray.Span[float64], epsilon float64) (contact.Contact[S, P], bool) {
	tol := intersect.Tolerance[S]{Epsilon: S(epsilon)}
	if span == nil {
		return intersect.Contact(&r, &tri, tol)
	}

	seg := ray.Segment[S, P, V]{
		Ray:  r,
		Span: ray.Span[S]{Lo: S(span.Lo), Hi: S(span.Hi)},
	}
	return intersect.SegmentTriangle(&seg, &tri, tol)
}

func vec32[A ~[3]float64](a A) mgl32.Vec3 {
	return mgl32.Vec3{float32(a[0]), float32(a[1]), float32(a[2])}
}

// Run evaluates every case in f.  A case whose expectation isn't met is
// reported through Result.Pass, not as an error.
func Run(ctx context.Context, f *File, opts Options) ([]Result, error) {
	tracer := otel.Tracer("row-major/tricast/casepack")
	ctx, span := tracer.Start(ctx, "casepack Run")
	defer span.End()

	epsilon := scalar.DefaultEpsilon
	if f.Epsilon != nil {
		epsilon = *f.Epsilon
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]Result, len(f.Cases))

	// Use errgroup and semaphore to limit concurrency.
	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(parallelism)

	for i := range f.Cases {
		if err := sem.Acquire(ctx, 1); err != nil {
			// A failed case cancels ctx; report that failure, not the cancellation.
			if waitErr := eg.Wait(); waitErr != nil {
				return nil, fmt.Errorf("while waiting for completion of errgroup: %w", waitErr)
			}
			return nil, fmt.Errorf("while acquiring concurrency limiter semaphore: %w", err)
		}

		eg.Go(func() error {
			defer sem.Release(1)

			res, err := runCase(ctx, tracer, &f.Cases[i], epsilon, opts.SinglePrecision)
			if err != nil {
				return fmt.Errorf("while evaluating case %d (%q): %w", i, f.Cases[i].Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "case evaluation aborted")
		return nil, fmt.Errorf("while waiting for completion of errgroup: %w", err)
	}

	failures := 0
	for _, r := range results {
		if !r.Pass {
			failures++
		}
	}
	span.SetAttributes(
		attribute.Int("cases", len(results)),
		attribute.Int("failures", failures),
	)

	return results, nil
}

func runCase(ctx context.Context, tracer trace.Tracer, c *Case, epsilon float64, singlePrecision bool) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	_, span := tracer.Start(ctx, "casepack Case")
	defer span.End()
	span.SetAttributes(attribute.String("case", c.Name))

	res, err := Evaluate(c, epsilon, singlePrecision)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid case")
		return Result{}, err
	}

	span.SetAttributes(
		attribute.Bool("hit", res.Hit),
		attribute.Bool("pass", res.Pass),
	)
	if !res.Pass {
		span.SetStatus(codes.Error, "expectation not met")
		glog.Warningf("Case %q failed: %v", c.Name, res)
	} else {
		glog.V(1).Infof("Case %q: %v", c.Name, res)
	}

	return res, nil
}
