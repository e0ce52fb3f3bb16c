package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/victor/vector"
)

func (s *Shell) add(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	s.printVector(vector.Add(a, b))
	return nil
}

func (s *Shell) sub(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	s.printVector(vector.Sub(a, b))
	return nil
}

func (s *Shell) scalarMul(ctx context.Context) error {
	v, err := s.readVector(ctx, "first")
	if err != nil {
		return err
	}
	line, err := s.prompt(ctx, "Please enter a scalar:")
	if err != nil {
		return err
	}
	k, err := ParseScalar(line)
	if err != nil {
		return err
	}
	s.printVector(vector.ScalarMul(v, k))
	return nil
}

func (s *Shell) dot(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	s.printResult(formatScalar(vector.Dot(a, b)))
	return nil
}

func (s *Shell) norm(ctx context.Context) error {
	v, err := s.readVector(ctx, "first")
	if err != nil {
		return err
	}
	s.printResult(formatScalar(vector.Norm(v)))
	return nil
}

func (s *Shell) angle(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	rad, err := vector.AngleBetween(a, b)
	if err != nil {
		return err
	}
	s.printResult(formatScalar(rad) + " rad")
	return nil
}

func (s *Shell) cross(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	v, err := vector.Cross(a, b)
	if err != nil {
		return err
	}
	s.printVector(v)
	return nil
}

func (s *Shell) basisFromOne(ctx context.Context) error {
	v, err := s.readVector(ctx, "first")
	if err != nil {
		return err
	}
	basis, err := vector.BasisFromOne(v)
	if err != nil {
		return err
	}
	s.printResult(basis.String())
	return nil
}

func (s *Shell) basisFromTwo(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	basis, err := vector.BasisFromTwo(a, b)
	if err != nil {
		return err
	}
	s.printResult(basis.String())
	return nil
}

func (s *Shell) save(ctx context.Context) error {
	if s.workspace == nil {
		return errNoWorkspace
	}
	if !s.hasLast {
		return errNothingSaved
	}
	name, err := s.prompt(ctx, "Please enter a name:")
	if err != nil {
		return err
	}
	name = strings.TrimPrefix(name, "@")
	if err := s.workspace.Save(ctx, name, s.last); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nSaved [%s] as @%s\n", s.last, name)
	return nil
}

func (s *Shell) list(ctx context.Context) error {
	if s.workspace == nil {
		return errNoWorkspace
	}
	names, err := s.workspace.Names(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.printResult("(no saved vectors)")
		return nil
	}
	lines := make([]string, len(names))
	for i, name := range names {
		v, err := s.workspace.Load(ctx, name)
		if err != nil {
			return err
		}
		lines[i] = fmt.Sprintf("@%s: %s", name, v)
	}
	s.printResult(strings.Join(lines, "\n"))
	return nil
}
