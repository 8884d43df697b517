package evaluator

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"

	"github.com/liamcoop/tagval/internal/logger"
	"github.com/liamcoop/tagval/values"
)

// guardCostLimit bounds the work a single guard expression may do
const guardCostLimit = 1000000

var (
	ErrInvalidGuardTable = errors.New("invalid guard table")
	ErrKindMismatch      = errors.New("value kind does not match guard table")
)

// Guard pairs a label with the CEL condition that selects it
type Guard struct {
	Label      string `yaml:"label"`
	Expression string `yaml:"when"`
}

// GuardTable is an ordered list of guards; the first match wins.
// Kind restricts the table to one value variant; empty accepts any.
type GuardTable struct {
	Name    string      `yaml:"name"`
	Kind    values.Kind `yaml:"kind,omitempty"`
	Default string      `yaml:"default"`
	Guards  []Guard     `yaml:"guards"`
}

// ParseGuardTable decodes a YAML guard table and checks its structure
func ParseGuardTable(data []byte) (GuardTable, error) {
	var table GuardTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil {
		return GuardTable{}, fmt.Errorf("%w: %v", ErrInvalidGuardTable, err)
	}
	if err := table.Validate(); err != nil {
		return GuardTable{}, err
	}
	return table, nil
}

// Validate checks the table has a name, at least one guard, and unique non-empty labels
func (t GuardTable) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidGuardTable)
	}
	switch t.Kind {
	case "", values.KindText, values.KindNumber, values.KindBoolean:
	default:
		return fmt.Errorf("%w: table %q has unknown kind %q", ErrInvalidGuardTable, t.Name, t.Kind)
	}
	if len(t.Guards) == 0 {
		return fmt.Errorf("%w: table %q must contain at least one guard", ErrInvalidGuardTable, t.Name)
	}

	seen := make(map[string]bool, len(t.Guards))
	for i, g := range t.Guards {
		if g.Label == "" {
			return fmt.Errorf("%w: guard %d in table %q has an empty label", ErrInvalidGuardTable, i, t.Name)
		}
		if g.Expression == "" {
			return fmt.Errorf("%w: guard %q in table %q has an empty expression", ErrInvalidGuardTable, g.Label, t.Name)
		}
		if seen[g.Label] {
			return fmt.Errorf("%w: duplicate label %q in table %q", ErrInvalidGuardTable, g.Label, t.Name)
		}
		seen[g.Label] = true
	}
	return nil
}

// DefaultNumberGuards mirrors ClassifyNumber as a guard table
func DefaultNumberGuards() GuardTable {
	return GuardTable{
		Name:    "number-ranges",
		Kind:    values.KindNumber,
		Default: "large",
		Guards: []Guard{
			{Label: "negative", Expression: `number < 0`},
			{Label: "zero", Expression: `number == 0`},
			{Label: "single digit", Expression: `number >= 1 && number <= 9`},
			{Label: "double digit", Expression: `number >= 10 && number <= 99`},
		},
	}
}

type compiledGuard struct {
	label   string
	program cel.Program
}

// GuardEngine classifies values with a compiled GuardTable.
// It is immutable after construction and safe for concurrent use.
type GuardEngine struct {
	name     string
	kind     values.Kind
	fallback string
	guards   []compiledGuard
}

// newGuardEnv declares the variables a guard expression can read
func newGuardEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("kind", cel.StringType),
		cel.Variable("text", cel.StringType),
		cel.Variable("length", cel.IntType),
		cel.Variable("number", cel.IntType),
		cel.Variable("boolean", cel.BoolType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return env, nil
}

// NewGuardEngine validates and compiles every guard in table
func NewGuardEngine(table GuardTable) (*GuardEngine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	env, err := newGuardEnv()
	if err != nil {
		return nil, err
	}

	en := &GuardEngine{
		name:     table.Name,
		kind:     table.Kind,
		fallback: table.Default,
		guards:   make([]compiledGuard, 0, len(table.Guards)),
	}

	for _, g := range table.Guards {
		prog, err := compileGuard(env, g.Expression)
		if err != nil {
			return nil, fmt.Errorf("failed to compile guard %q in table %q: %w", g.Label, table.Name, err)
		}
		logger.Trace("compiled guard", "table", table.Name, "label", g.Label, "expression", g.Expression)
		en.guards = append(en.guards, compiledGuard{label: g.Label, program: prog})
	}

	logger.Debug("guard table ready", "table", table.Name, "guards", len(en.guards))
	return en, nil
}

func compileGuard(env *cel.Env, expression string) (cel.Program, error) {
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %w", issues.Err())
	}

	prog, err := env.Program(ast, cel.CostLimit(guardCostLimit))
	if err != nil {
		return nil, fmt.Errorf("program creation error: %w", err)
	}
	return prog, nil
}

// Name returns the table name the engine was built from
func (en *GuardEngine) Name() string {
	return en.name
}

// Classify returns the label of the first guard that holds for v, or the table default.
// A guard whose result is not a boolean counts as no match.
func (en *GuardEngine) Classify(v values.Value) (string, error) {
	if v == nil {
		return "", fmt.Errorf("table %q: cannot classify a nil value", en.name)
	}
	if en.kind != "" && v.Kind() != en.kind {
		return "", fmt.Errorf("table %q accepts %s, got %s: %w", en.name, en.kind, v.Kind(), ErrKindMismatch)
	}

	activation := activationFor(v)
	for _, g := range en.guards {
		out, _, err := g.program.Eval(activation)
		if err != nil {
			return "", fmt.Errorf("table %q: guard %q failed: %w", en.name, g.label, err)
		}
		if matched, ok := out.Value().(bool); ok && matched {
			return g.label, nil
		}
	}
	return en.fallback, nil
}

// activationFor binds every declared variable; fields of other variants get zero values
func activationFor(v values.Value) map[string]any {
	act := map[string]any{
		"kind":    string(v.Kind()),
		"text":    "",
		"length":  int64(0),
		"number":  int64(0),
		"boolean": false,
	}
	switch v := v.(type) {
	case values.Text:
		act["text"] = string(v)
		act["length"] = int64(uniseg.GraphemeClusterCount(string(v)))
	case values.Number:
		act["number"] = int64(v)
	case values.Boolean:
		act["boolean"] = bool(v)
	}
	return act
}
