package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ezvec/internal/config"
	"github.com/katalvlaran/ezvec/internal/logging"
	"github.com/katalvlaran/ezvec/internal/matrixio"
	"github.com/katalvlaran/ezvec/matrix"
)

// result is what a command produces: a matrix or a scalar.
type result struct {
	m    matrix.Matrix
	rank *int
}

type unaryOp func(m *matrix.Dense) (result, error)

type binaryOp func(a, b *matrix.Dense) (result, error)

func (a *app) unaryCmd(use, short string, op unaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Fields(use)[0]
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("Running operation",
				zap.String("op", name),
				logging.Shape("input", m.Rows(), m.Cols()))

			res, err := op(m)
			if err != nil {
				a.logger.Warn("Operation failed", zap.String("op", name), zap.Error(err))
				return fmt.Errorf("%s: %w", name, err)
			}

			return a.render(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) binaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Fields(use)[0]
			left, err := a.load(args[0])
			if err != nil {
				return err
			}
			right, err := a.load(args[1])
			if err != nil {
				return err
			}
			a.logger.Info("Running operation",
				zap.String("op", name),
				logging.Shape("left", left.Rows(), left.Cols()),
				logging.Shape("right", right.Rows(), right.Cols()))

			res, err := op(left, right)
			if err != nil {
				a.logger.Warn("Operation failed", zap.String("op", name), zap.Error(err))
				return fmt.Errorf("%s: %w", name, err)
			}

			return a.render(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) inverseCmd() *cobra.Command {
	var noSingularCheck bool
	cmd := a.unaryCmd("inverse FILE", "Inverse by Gauss–Jordan elimination", func(m *matrix.Dense) (result, error) {
		opts := a.cfg.MatrixOptions()
		if noSingularCheck {
			opts = append(opts, matrix.WithoutSingularCheck())
		}
		inv, err := matrix.Inverse(m, opts...)
		return result{m: inv}, err
	})
	cmd.Flags().BoolVar(&noSingularCheck, "no-singular-check", false, "Return the right block even when the input is singular")

	return cmd
}

func (a *app) load(path string) (*matrix.Dense, error) {
	m, err := matrixio.LoadFile(path, a.cfg.MatrixOptions()...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Matrix loaded", zap.String("path", path), logging.Shape("shape", m.Rows(), m.Cols()))

	return m, nil
}

func (a *app) render(w io.Writer, res result) error {
	if res.rank != nil {
		if a.cfg.Output.Format == config.FormatYAML {
			enc := yaml.NewEncoder(w)
			if err := enc.Encode(map[string]int{"rank": *res.rank}); err != nil {
				return err
			}
			return enc.Close()
		}
		_, err := fmt.Fprintln(w, *res.rank)
		return err
	}

	if a.cfg.Output.Format == config.FormatYAML {
		return matrixio.Encode(w, res.m)
	}
	_, err := fmt.Fprintln(w, res.m)

	return err
}

// ---------- operations ----------

func (a *app) rref(m *matrix.Dense) (result, error) {
	r, err := matrix.ReducedRowEchelonForm(m)
	return result{m: r}, err
}

func (a *app) rank(m *matrix.Dense) (result, error) {
	r, err := matrix.Rank(m)
	return result{rank: &r}, err
}

func (a *app) transpose(m *matrix.Dense) (result, error) {
	t, err := matrix.Transpose(m)
	return result{m: t}, err
}

func (a *app) add(l, r *matrix.Dense) (result, error) {
	s, err := matrix.Add(l, r)
	return result{m: s}, err
}

func (a *app) sub(l, r *matrix.Dense) (result, error) {
	d, err := matrix.Sub(l, r)
	return result{m: d}, err
}

func (a *app) mul(l, r *matrix.Dense) (result, error) {
	p, err := matrix.Mul(l, r)
	return result{m: p}, err
}

func (a *app) augment(l, r *matrix.Dense) (result, error) {
	w, err := matrix.Augment(l, r)
	return result{m: w}, err
}
