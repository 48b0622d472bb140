// Package config loads scenario descriptions from YAML documents.
//
// A document is first validated against an embedded JSON Schema and only
// then decoded, so structural mistakes (missing horizon, a typo in a key,
// alpha outside (0, 1]) are reported before any tree is built. Cross-field
// rules (stopping time not beyond the horizon) are checked on the decoded
// struct. Numerical checks (row-stochastic transition matrix, initial
// distribution summing to one) remain with the scenario package.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/raocp/matrix"
	"github.com/katalvlaran/raocp/risk"
	"github.com/katalvlaran/raocp/scenario"
)

// ErrInvalidConfig is returned for unparsable documents and rule violations.
var ErrInvalidConfig = errors.New("config: invalid scenario document")

const schemaURL = "scenario.schema.json"

//go:embed scenario.schema.json
var schemaSource []byte

// validate holds cross-field rules the schema cannot express.
var validate = validator.New()

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("config: add schema resource: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Risk selects the risk measure attached to every non-leaf node.
type Risk struct {
	Type  string  `yaml:"type" json:"type" validate:"oneof=AVaR"`
	Alpha float64 `yaml:"alpha" json:"alpha" validate:"gt=0,lte=1"`
}

// Scenario is a decoded scenario document.
type Scenario struct {
	Transition   [][]float64 `yaml:"transition" json:"transition" validate:"required,dive,required"`
	Initial      []float64   `yaml:"initial" json:"initial" validate:"required"`
	Horizon      int         `yaml:"horizon" json:"horizon" validate:"min=1"`
	StoppingTime int         `yaml:"stopping_time,omitempty" json:"stopping_time,omitempty" validate:"omitempty,min=1,ltefield=Horizon"`
	Risk         *Risk       `yaml:"risk,omitempty" json:"risk,omitempty"`
}

// Load reads and parses the document at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse validates data against the scenario schema and decodes it.
func Parse(data []byte) (*Scenario, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// The schema validator expects the value model of encoding/json.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := validate.Struct(&sc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &sc, nil
}

// Factory builds the Markov-chain factory the document describes. Extra
// options are applied after the stopping time taken from the document.
func (sc *Scenario) Factory(opts ...scenario.Option) (*scenario.MarkovChainFactory, error) {
	p, err := matrix.NewFromRows(sc.Transition)
	if err != nil {
		return nil, fmt.Errorf("%w: transition matrix: %w", scenario.ErrInvalidDistribution, err)
	}
	all := make([]scenario.Option, 0, len(opts)+1)
	if sc.StoppingTime > 0 {
		all = append(all, scenario.WithStoppingTime(sc.StoppingTime))
	}
	all = append(all, opts...)

	return scenario.NewMarkovChainFactory(p, sc.Initial, sc.Horizon, all...)
}

// RiskItems builds the document's risk measure for every non-leaf node of
// tree. A document without a risk section yields no items.
func (sc *Scenario) RiskItems(tree *scenario.Tree) ([]*risk.AVaR, error) {
	if sc.Risk == nil {
		return nil, nil
	}
	if sc.Risk.Type != risk.TypeAVaR {
		return nil, fmt.Errorf("%w: unsupported risk type %q", ErrInvalidConfig, sc.Risk.Type)
	}
	return risk.NewAVaRForTree(tree, sc.Risk.Alpha)
}
