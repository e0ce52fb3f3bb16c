// Package shell implements the interactive text front end: a numbered menu
// that reads vectors and scalars, runs one vector operation and prints the
// result.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/victor/vector"
	"go.uber.org/zap"
)

// Workspace stores named vectors; *store.Store satisfies it.
type Workspace interface {
	Save(ctx context.Context, name string, v vector.Vector) error
	Load(ctx context.Context, name string) (vector.Vector, error)
	Names(ctx context.Context) ([]string, error)
}

const banner = "Welcome to Victor: Not so friendly Vector Processor"

var (
	errEndOfInput   = errors.New("end of input")
	errNoWorkspace  = errors.New("no workspace configured")
	errNothingSaved = errors.New("no vector result to save yet")
)

type inputLine struct {
	text string
	err  error
}

type command struct {
	choice int
	title  string
	run    func(s *Shell, ctx context.Context) error
}

var commands = []command{
	{choice: 1, title: "Add two vectors", run: (*Shell).add},
	{choice: 2, title: "Subtract two vectors", run: (*Shell).sub},
	{choice: 3, title: "Multiply a scalar to a vector", run: (*Shell).scalarMul},
	{choice: 4, title: "Dot product of two vectors", run: (*Shell).dot},
	{choice: 5, title: "Norm of a vector", run: (*Shell).norm},
	{choice: 6, title: "Angle between two vectors", run: (*Shell).angle},
	{choice: 7, title: "Cross product of two vectors", run: (*Shell).cross},
	{choice: 8, title: "Orthonormal basis from one vector", run: (*Shell).basisFromOne},
	{choice: 9, title: "Orthonormal basis from two vectors", run: (*Shell).basisFromTwo},
	{choice: 10, title: "Save the last result", run: (*Shell).save},
	{choice: 11, title: "List saved vectors", run: (*Shell).list},
}

// Shell is a single-user menu loop over an input and an output stream.
type Shell struct {
	in        *bufio.Scanner
	lines     chan inputLine
	out       io.Writer
	workspace Workspace
	logger    *zap.Logger
	banner    bool

	last    vector.Vector
	hasLast bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithWorkspace enables @name vector references and the save/list commands.
func WithWorkspace(w Workspace) Option { return func(s *Shell) { s.workspace = w } }

// WithLogger sets the logger used for operation failures.
func WithLogger(l *zap.Logger) Option { return func(s *Shell) { s.logger = l } }

// WithoutBanner suppresses the welcome line.
func WithoutBanner() Option { return func(s *Shell) { s.banner = false } }

// New creates a Shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: zap.NewNop(),
		banner: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu and executes commands until the user picks exit, an
// unknown choice, or the input ends. Failed commands print an error and
// return to the menu. Cancelling ctx ends Run even while it waits for input.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = make(chan inputLine)
	go s.scan(s.lines, done)

	if s.banner {
		fmt.Fprint(s.out, banner+"\n\n")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		line, err := s.readLine(ctx)
		if err != nil {
			return s.endOfInput(err)
		}
		cmd, ok := lookup(line)
		if !ok {
			fmt.Fprintln(s.out, "Goodbye")
			return nil
		}
		if err := cmd.run(s, ctx); err != nil {
			if errors.Is(err, errEndOfInput) {
				return s.endOfInput(err)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.logger.Debug("command failed", zap.Int("choice", cmd.choice), zap.Error(err))
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func lookup(line string) (command, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return command{}, false
	}
	for _, cmd := range commands {
		if cmd.choice == choice {
			return cmd, true
		}
	}
	return command{}, false
}

func (s *Shell) printMenu() {
	var b strings.Builder
	b.WriteString("Please select an option:\n")
	for _, cmd := range commands {
		fmt.Fprintf(&b, " %d. %s\n", cmd.choice, cmd.title)
	}
	b.WriteString(" 0. Exit\n")
	fmt.Fprint(s.out, b.String())
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, errEndOfInput) {
		return nil
	}
	return err
}

// scan feeds input lines to readLine until the input ends or Run returns.
// A blocked read on the underlying reader outlives Run.
func (s *Shell) scan(lines chan<- inputLine, done <-chan struct{}) {
	defer close(lines)
	for s.in.Scan() {
		select {
		case lines <- inputLine{text: s.in.Text()}:
		case <-done:
			return
		}
	}
	if err := s.in.Err(); err != nil {
		select {
		case lines <- inputLine{err: err}:
		case <-done:
		}
	}
}

func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", errEndOfInput
		}
		if line.err != nil {
			return "", line.err
		}
		return strings.TrimSpace(line.text), nil
	}
}

func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprintln(s.out, text)
	return s.readLine(ctx)
}

// readVector reads one vector line; a single @name token loads a saved vector.
func (s *Shell) readVector(ctx context.Context, ordinal string) (vector.Vector, error) {
	line, err := s.prompt(ctx, fmt.Sprintf("Please enter the %s vector: (single space separated numbers)", ordinal))
	if err != nil {
		return vector.Vector{}, err
	}
	if name, ok := strings.CutPrefix(line, "@"); ok {
		if s.workspace == nil {
			return vector.Vector{}, errNoWorkspace
		}
		return s.workspace.Load(ctx, strings.TrimSpace(name))
	}
	return ParseVector(line)
}

func (s *Shell) readPair(ctx context.Context) (vector.Vector, vector.Vector, error) {
	a, err := s.readVector(ctx, "first")
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	b, err := s.readVector(ctx, "second")
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	return a, b, nil
}

func (s *Shell) printResult(text string) {
	fmt.Fprintf(s.out, "\nThe result is:\n %s\n", strings.ReplaceAll(text, "\n", "\n "))
}

func (s *Shell) printVector(v vector.Vector) {
	s.last, s.hasLast = v, true
	s.printResult(v.String())
}
