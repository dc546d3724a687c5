package halfspace

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"em_casing/internal/harmonic"
)

// Strategy names how the coefficient matrix is built.
type Strategy string

const (
	// StrategyGamma builds A from the conjugated Gamma matrix, FormA.
	StrategyGamma Strategy = "gamma"
	// StrategyDirect builds A element by element in e^(-iwt), FormADirect.
	StrategyDirect Strategy = "direct"
)

// Strategies lists the known matrix strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyGamma, StrategyDirect}
}

func (s Strategy) Validate() error {
	switch s {
	case StrategyGamma, StrategyDirect:
		return nil
	default:
		return fmt.Errorf("%w: strategy %q", ErrUnknownStrategy, string(s))
	}
}

type assembleConfig struct {
	workers  int
	symmetry bool
}

// AssembleOption configures matrix assembly.
type AssembleOption func(*assembleConfig)

// WithWorkers assembles up to n rows concurrently. n < 1 means 1.
func WithWorkers(n int) AssembleOption {
	return func(c *assembleConfig) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithSymmetry computes only the upper triangle and mirrors it. The
// elements depend on |zi-zj| and zi+zj only, so the result is identical to
// the full computation.
func WithSymmetry() AssembleOption {
	return func(c *assembleConfig) { c.symmetry = true }
}

func newAssembleConfig(opts []AssembleOption) assembleConfig {
	c := assembleConfig{workers: 1}
	for _, o := range opts {
		o(&c)
	}
	return c
}

type (
	diagonalFunc    func(p Params, zi float64) (complex128, error)
	offDiagonalFunc func(p Params, zi, zj float64) (complex128, error)
)

// assemble fills an N x N matrix, dispatching the diagonal to diag and
// everything else to off.
func assemble[C harmonic.Convention](
	ctx context.Context,
	p Params,
	cfg assembleConfig,
	diag diagonalFunc,
	off offDiagonalFunc,
) (*harmonic.Matrix[C], error) {
	n := p.NumSegments
	zs := p.SegmentCenters()
	m := harmonic.NewMatrix[C](n, n)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			j0 := 0
			if cfg.symmetry {
				j0 = i
			}
			for j := j0; j < n; j++ {
				var (
					v   complex128
					err error
				)
				if i == j {
					v, err = diag(p, zs[i])
				} else {
					v, err = off(p, zs[i], zs[j])
				}
				if err != nil {
					return err
				}
				m.Set(i, j, v)
				if cfg.symmetry && i != j {
					m.Set(j, i, v)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"segments":   n,
		"filter":     p.Filter,
		"convention": harmonic.NameOf[C](),
		"workers":    cfg.workers,
		"symmetry":   cfg.symmetry,
		"elapsed":    time.Since(start),
	}).Debug("matrix assembled")
	return m, nil
}

/*
Integrated Green's matrix of the casing

Gii/Gij are derived in the e^(-iwt) convention; the matrix is converted to
e^(+iwt) here, the convention of the excitation and of every field formula.
*/
func FormGamma(ctx context.Context, p Params, opts ...AssembleOption) (*harmonic.Matrix[harmonic.Plus], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	raw, err := assemble[harmonic.Minus](ctx, p, newAssembleConfig(opts), Gii, Gij)
	if err != nil {
		return nil, err
	}
	return harmonic.MatrixToPlus(raw), nil
}

/*
Coefficient matrix of the casing current densities, Gamma strategy

	A = I/sigma_c - conj(Gamma)

Returns:
	A in the e^(+iwt) convention
*/
func FormA(ctx context.Context, p Params, opts ...AssembleOption) (*harmonic.Matrix[harmonic.Plus], error) {
	gamma, err := FormGamma(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	n := p.NumSegments
	self := complex(1/p.CasingConductivity, 0)
	a := gamma.CDense()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, -a.At(i, j))
		}
		a.Set(i, i, self+a.At(i, i))
	}
	return harmonic.MatrixFrom[harmonic.Plus](a), nil
}

/*
Coefficient matrix of the casing current densities, direct strategy

Built element by element from AiiOld/AijOld with no conjugation step.

Returns:
	A in the e^(-iwt) convention; harmonic.MatrixToPlus gives the matrix
	FormA builds
*/
func FormADirect(ctx context.Context, p Params, opts ...AssembleOption) (*harmonic.Matrix[harmonic.Minus], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return assemble[harmonic.Minus](ctx, p, newAssembleConfig(opts), AiiOld, AijOld)
}
