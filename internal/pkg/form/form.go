// Package form holds declarative field schemas and the per-form state they
// validate. State only changes through Dispatch.
package form

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xyz-asif/findme/internal/pkg/validator"
	apperrors "github.com/xyz-asif/findme/pkg/errors"
)

// Rule is one validator tag plus the message shown when it fails.
type Rule struct {
	Tag     string
	Message string
}

type Field struct {
	Name     string
	Optional bool
	Rules    []Rule
}

// Schema is an ordered list of fields.
type Schema struct {
	fields []Field
	index  map[string]int
}

func NewSchema(fields ...Field) *Schema {
	s := &Schema{fields: fields, index: make(map[string]int, len(fields))}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Validate returns the first failing rule's message for every invalid field.
func (s *Schema) Validate(values Values) Errors {
	errs := Errors{}
	for _, f := range s.fields {
		v := values[f.Name]
		if f.Optional && strings.TrimSpace(v) == "" {
			continue
		}
		for _, r := range f.Rules {
			if err := validator.Check(v, r.Tag); err != nil {
				errs[f.Name] = r.Message
				break
			}
		}
	}
	return errs
}

type Values map[string]string

func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Errors maps a field name to its message. It satisfies error so a failed
// submit can be returned directly; errors.Is(err, apperrors.ErrValidation)
// holds for it.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Unwrap() error { return apperrors.ErrValidation }

type ActionKind int

const (
	// SetValue stores Value under Field.
	SetValue ActionKind = iota
	// SetValues merges Values into the form.
	SetValues
	// Reset empties every value and error.
	Reset
	// ClearErrors drops the errors of the last submit attempt.
	ClearErrors
)

type Action struct {
	Kind   ActionKind
	Field  string
	Value  string
	Values Values
}

// State is the explicit field -> {value, error} mapping for one form.
// It is not safe for concurrent use; owners serialize access.
type State struct {
	schema *Schema
	values Values
	errors Errors
}

func NewState(schema *Schema) *State {
	return &State{schema: schema, values: Values{}, errors: Errors{}}
}

// Dispatch applies a. Values for fields outside the schema are ignored.
func (s *State) Dispatch(a Action) {
	switch a.Kind {
	case SetValue:
		if s.schema.Has(a.Field) {
			s.values[a.Field] = a.Value
		}
	case SetValues:
		for k, v := range a.Values {
			if s.schema.Has(k) {
				s.values[k] = v
			}
		}
	case Reset:
		s.values = Values{}
		s.errors = Errors{}
	case ClearErrors:
		s.errors = Errors{}
	}
}

func (s *State) Values() Values { return s.values.Clone() }

func (s *State) Errors() Errors {
	out := make(Errors, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Validate re-runs the schema over the current values and records the
// result. It returns nil when every field passes.
func (s *State) Validate() error {
	s.errors = s.schema.Validate(s.values)
	if len(s.errors) > 0 {
		return s.Errors()
	}
	return nil
}

// Submit validates and calls fn with a snapshot of the values only if
// every field passed.
func (s *State) Submit(fn func(Values) error) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return fn(s.Values())
}

// View is the JSON shape a client renders a form from.
type View struct {
	Values Values `json:"values"`
	Errors Errors `json:"errors"`
}

func (s *State) View() View {
	return View{Values: s.Values(), Errors: s.Errors()}
}
