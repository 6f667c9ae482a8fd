// Package ops exposes every primitive as a named operation over string
// arguments. The command line and the batch runner both dispatch through the
// table returned by All, so an operation behaves the same on either surface.
package ops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/TheusHen/primkit/primkit"
	"github.com/TheusHen/primkit/primkit/aead"
	"github.com/TheusHen/primkit/primkit/ecdsa"
)

// Options tunes operations that have more than one valid behaviour. A nil
// StrictLowS or empty Cipher or Hash is unset and takes its value from Merge.
type Options struct {
	StrictLowS *bool          `json:"strict_low_s,omitempty"`
	Cipher     aead.Suite     `json:"cipher,omitempty"`
	Hash       ecdsa.HashFunc `json:"hash,omitempty"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		StrictLowS: Bool(false),
		Cipher:     aead.DefaultSuite,
		Hash:       ecdsa.HashSHA256,
	}
}

// Bool returns a pointer to v, for setting Options.StrictLowS.
func Bool(v bool) *bool {
	return &v
}

// Merge returns o with every unset field taken from base.
func (o Options) Merge(base Options) Options {
	if o.Cipher == "" {
		o.Cipher = base.Cipher
	}
	if o.Hash == "" {
		o.Hash = base.Hash
	}
	if o.StrictLowS == nil {
		o.StrictLowS = base.StrictLowS
	}
	return o
}

func (o Options) strictLowS() bool {
	return o.StrictLowS != nil && *o.StrictLowS
}

// Field is one named output value.
type Field struct {
	// Key names the value in structured output.
	Key string
	// Label prefixes the value in text output. An empty label prints the
	// bare value.
	Label string
	Value string
}

// Result is the ordered output of an operation.
type Result struct {
	Fields []Field
}

func single(key, value string) Result {
	return Result{Fields: []Field{{Key: key, Value: value}}}
}

// Get returns the value stored under key.
func (r Result) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// String renders r as text, one field per line.
func (r Result) String() string {
	var sb strings.Builder
	for i, f := range r.Fields {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if f.Label != "" {
			sb.WriteString(f.Label)
			sb.WriteString(": ")
		}
		sb.WriteString(f.Value)
	}
	return sb.String()
}

// MarshalJSON encodes r as an object keyed by field key, in field order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Op is a named operation.
type Op struct {
	Name    string
	Args    []string
	Summary string
	Run     func(opts Options, args []string) (Result, error)
}

// Usage returns the name followed by the argument names.
func (op Op) Usage() string {
	return strings.Join(append([]string{op.Name}, op.Args...), " ")
}

var registry = map[string]Op{}

func register(op Op) {
	if _, dup := registry[op.Name]; dup {
		panic("ops: duplicate operation " + op.Name)
	}
	registry[op.Name] = op
}

// All returns every operation sorted by name.
func All() []Op {
	out := make([]Op, 0, len(registry))
	for _, op := range registry {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds an operation by name.
func Lookup(name string) (Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// ErrUnknownOp is returned by Run for a name that is not registered.
var ErrUnknownOp = errors.New("unknown operation")

// Run checks the argument count and runs the named operation. Unset options
// fall back to DefaultOptions.
func Run(name string, opts Options, args []string) (Result, error) {
	op, ok := Lookup(name)
	if !ok {
		return Result{}, errors.Wrapf(ErrUnknownOp, "operation %q", name)
	}
	if len(args) != len(op.Args) {
		return Result{}, errors.Wrapf(
			primkit.MakeError(primkit.ErrInvalidEncoding,
				fmt.Sprintf("expected %d arguments (%s), got %d",
					len(op.Args), strings.Join(op.Args, " "), len(args))),
			"%s", name)
	}
	return op.Run(opts.Merge(DefaultOptions()), args)
}

// argError attaches the argument name to err.
func argError(err error, name string) error {
	return errors.Wrapf(err, "invalid %s", name)
}

func boolString(ok bool) string {
	if ok {
		return "True"
	}
	return "False"
}
