// Package session loads check sessions from YAML files: the original
// program surface (fields, predicates), the hypothesis guesses, and the
// check templates to instrument.
package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dinanoe/silicon/infer"
	"github.com/dinanoe/silicon/sil"
)

// Session is a fully decoded session file.
type Session struct {
	Program    *sil.Program
	Templates  []*sil.Seqn
	Hypothesis *infer.Guess
	Options    Options
}

// Options carries per-session build settings.
type Options struct {
	BranchBools bool `yaml:"branchBools"`
}

// Load reads and decodes a session file.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return Parse(data)
}

// Parse decodes session YAML.
func Parse(data []byte) (*Session, error) {
	var f fileNode
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return f.build()
}

type fileNode struct {
	Fields     []fieldNode  `yaml:"fields"`
	Predicates []predNode   `yaml:"predicates"`
	Guesses    []guessNode  `yaml:"guesses"`
	Templates  [][]stmtNode `yaml:"templates"`
	Options    Options      `yaml:"options"`
}

type fieldNode struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type predNode struct {
	Name   string    `yaml:"name"`
	Params []varNode `yaml:"params"`
}

type guessNode struct {
	Predicate string    `yaml:"predicate"`
	Params    []varNode `yaml:"params"`
	Body      *expNode  `yaml:"body"`
	Atoms     []expNode `yaml:"atoms"`
}

type varNode struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

func (f *fileNode) build() (*Session, error) {
	d := &decoder{fields: make(map[string]*sil.Field)}

	prog := &sil.Program{}
	for _, fn := range f.Fields {
		typ, ok := sil.ParseType(fn.Type)
		if !ok {
			return nil, fmt.Errorf("session: field %s: unknown type %q", fn.Name, fn.Type)
		}
		fld := &sil.Field{Name: fn.Name, Type: typ}
		d.fields[fn.Name] = fld
		prog.Fields = append(prog.Fields, fld)
	}

	for _, pn := range f.Predicates {
		params, err := d.vars(pn.Params)
		if err != nil {
			return nil, fmt.Errorf("session: predicate %s: %w", pn.Name, err)
		}
		prog.Predicates = append(prog.Predicates, &sil.Predicate{Name: pn.Name, Params: params})
	}

	guess := infer.NewGuess()
	for _, gn := range f.Guesses {
		params, err := d.vars(gn.Params)
		if err != nil {
			return nil, fmt.Errorf("session: guess %s: %w", gn.Predicate, err)
		}
		c := &infer.Candidate{Params: params}
		if gn.Body != nil {
			c.Body, err = d.exp(gn.Body)
			if err != nil {
				return nil, fmt.Errorf("session: guess %s body: %w", gn.Predicate, err)
			}
		}
		for i := range gn.Atoms {
			atom, err := d.exp(&gn.Atoms[i])
			if err != nil {
				return nil, fmt.Errorf("session: guess %s atom %d: %w", gn.Predicate, i, err)
			}
			c.Atoms = append(c.Atoms, atom)
		}
		guess.Set(gn.Predicate, c)
	}

	templates := make([]*sil.Seqn, 0, len(f.Templates))
	for i, tn := range f.Templates {
		block, err := d.block(tn)
		if err != nil {
			return nil, fmt.Errorf("session: template %d: %w", i, err)
		}
		templates = append(templates, block)
	}

	return &Session{
		Program:    prog,
		Templates:  templates,
		Hypothesis: guess,
		Options:    f.Options,
	}, nil
}

type decoder struct {
	fields map[string]*sil.Field
}

func (d *decoder) vars(nodes []varNode) ([]*sil.LocalVar, error) {
	out := make([]*sil.LocalVar, len(nodes))
	for i, n := range nodes {
		v, err := d.localVar(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (d *decoder) localVar(n varNode) (*sil.LocalVar, error) {
	typ, ok := sil.ParseType(n.Type)
	if !ok {
		return nil, fmt.Errorf("variable %s: unknown type %q", n.Name, n.Type)
	}
	return &sil.LocalVar{Name: n.Name, Type: typ}, nil
}
