// Package batch runs many operations from a JSON lines stream.
//
// Each input line is a Request. Requests are fanned out over a bounded set of
// workers and one Response per request is written in input order. A request
// that fails is reported in its Response; only read, write and JSON framing
// errors stop the run.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/ops"
)

// MaxLineSize bounds a single request line.
const MaxLineSize = 1 << 20

// Request is one input line.
type Request struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Op      string          `json:"op"`
	Args    []string        `json:"args"`
	Options ops.Options     `json:"options"`
}

// Response is one output line.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Op     string          `json:"op"`
	OK     bool            `json:"ok"`
	Result *ops.Result     `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Kind   string          `json:"kind,omitempty"`
}

// Config configures a Runner.
type Config struct {
	Workers int         // concurrent requests (default: 4)
	Options ops.Options // defaults for options a request leaves unset
}

// DefaultConfig returns the defaults used by the command line.
func DefaultConfig() Config {
	return Config{
		Workers: 4,
		Options: ops.DefaultOptions(),
	}
}

// Stats counts processed requests.
type Stats struct {
	Requests atomic.Int64
	Failed   atomic.Int64
}

// Runner executes request streams.
type Runner struct {
	config Config
	log    zerolog.Logger
	stats  Stats
}

// NewRunner creates a runner. A nil logger disables logging.
func NewRunner(config Config, log *zerolog.Logger) *Runner {
	if config.Workers <= 0 {
		config.Workers = DefaultConfig().Workers
	}
	config.Options = config.Options.Merge(ops.DefaultOptions())
	r := &Runner{config: config, log: zerolog.Nop()}
	if log != nil {
		r.log = log.With().Str("component", "batch").Logger()
	}
	return r
}

// Stats returns the counters accumulated over every Run.
func (r *Runner) Stats() *Stats { return &r.stats }

// Run reads requests from in until EOF and writes responses to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)
	pending := make(chan chan Response, r.config.Workers)

	g.Go(func() error {
		defer close(pending)
		return r.dispatch(ctx, in, pending)
	})
	g.Go(func() error {
		return r.write(out, pending)
	})
	return g.Wait()
}

func (r *Runner) dispatch(ctx context.Context, in io.Reader, pending chan<- chan Response) error {
	var work errgroup.Group
	work.SetLimit(r.config.Workers)
	defer work.Wait()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		r.traceRequest(line, req)

		slot := make(chan Response, 1)
		select {
		case pending <- slot:
		case <-ctx.Done():
			return ctx.Err()
		}
		work.Go(func() error {
			slot <- r.handle(ctx, req)
			return nil
		})
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read requests")
	}
	return nil
}

func (r *Runner) handle(ctx context.Context, req Request) Response {
	resp := Response{ID: req.ID, Op: req.Op}
	r.stats.Requests.Add(1)
	if err := ctx.Err(); err != nil {
		return r.fail(resp, err)
	}
	res, err := ops.Run(req.Op, req.Options.Merge(r.config.Options), req.Args)
	if err != nil {
		return r.fail(resp, err)
	}
	resp.OK = true
	resp.Result = &res
	return resp
}

func (r *Runner) fail(resp Response, err error) Response {
	r.stats.Failed.Add(1)
	resp.Error = err.Error()
	if kind, ok := primkit.KindOf(err); ok {
		resp.Kind = string(kind)
	}
	r.log.Debug().Str("op", resp.Op).Err(err).Msg("request failed")
	return resp
}

func (r *Runner) write(out io.Writer, pending <-chan chan Response) error {
	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)
	for slot := range pending {
		if err := enc.Encode(<-slot); err != nil {
			return errors.Wrap(err, "write response")
		}
		if err := bw.Flush(); err != nil {
			return errors.Wrap(err, "write response")
		}
	}
	return nil
}

// traceRequest dumps the shape of a request without its arguments, which may
// hold private keys.
func (r *Runner) traceRequest(line int, req Request) {
	e := r.log.Trace()
	if !e.Enabled() {
		return
	}
	lens := make([]int, len(req.Args))
	for i, a := range req.Args {
		lens[i] = len(a)
	}
	view := struct {
		Op      string
		ArgLens []int
		Options ops.Options
	}{req.Op, lens, req.Options}
	e.Int("line", line).Str("request", spew.Sdump(view)).Msg("decoded request")
}
