package simserver

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/variant"
)

// Fixture is the top-level document describing a simulated address space.
type Fixture struct {
	APIVersion string        `yaml:"apiVersion" json:"apiVersion" jsonschema:"required,enum=space/v1"`
	Name       string        `yaml:"name"       json:"name"       jsonschema:"required"`
	Nodes      []FixtureNode `yaml:"nodes"      json:"nodes"      jsonschema:"required"`
}

// FixtureNode describes one node of the space. Type/Value apply to data
// points, Args/Result to procedures, Children to containers.
type FixtureNode struct {
	Name     string        `yaml:"name" json:"name" jsonschema:"required"`
	Kind     string        `yaml:"kind" json:"kind" jsonschema:"required,enum=container,enum=datapoint,enum=procedure,enum=other"`
	Type     string        `yaml:"type,omitempty"     json:"type,omitempty"`
	Value    string        `yaml:"value,omitempty"    json:"value,omitempty"`
	Writable bool          `yaml:"writable,omitempty" json:"writable,omitempty"`
	Args     []FixtureArg  `yaml:"args,omitempty"     json:"args,omitempty"`
	Result   *FixtureValue `yaml:"result,omitempty"   json:"result,omitempty"`
	Children []FixtureNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// FixtureArg declares one procedure input argument.
type FixtureArg struct {
	Name string `yaml:"name" json:"name" jsonschema:"required"`
	Type string `yaml:"type" json:"type" jsonschema:"required"`
}

// FixtureValue is a typed literal, converted through the variant rules.
type FixtureValue struct {
	Type  string `yaml:"type"  json:"type"  jsonschema:"required"`
	Value string `yaml:"value" json:"value" jsonschema:"required"`
}

// LoadFixture parses a fixture with strict unknown-field rejection.
func LoadFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // reject unknown fields

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fx, nil
}

// LoadFixtureFile reads, validates and instantiates a fixture file as a
// ready-to-connect server.
func LoadFixtureFile(path string) (*Server, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	fx, err := LoadFixture(f)
	if err != nil {
		return nil, err
	}
	if err := fx.Validate(); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return fx.Build()
}

// Validate checks the fixture against the JSON Schema generated from these
// structs. Structural errors are caught earlier by the strict YAML decode;
// this pass enforces enums and required fields.
func (fx *Fixture) Validate() error {
	data, err := json.Marshal(fx)
	if err != nil {
		return fmt.Errorf("marshal for schema validation: %w", err)
	}

	schemaJSON, err := GenerateFixtureSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	var schemaDoc any
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return fmt.Errorf("unmarshal schema: %w", err)
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource("space-v1.json", schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	sch, err := c.Compile("space-v1.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// Build instantiates the fixture as a server.
func (fx *Fixture) Build() (*Server, error) {
	s := New(fx.Name)
	for _, n := range fx.Nodes {
		if err := buildNode(s.RootNode(), n); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func buildNode(parent *Node, fn FixtureNode) error {
	var built *Node
	switch fn.Kind {
	case "container":
		built = parent.AddContainer(fn.Name)

	case "datapoint":
		tag := variant.ParseTag(fn.Type)
		v, err := variant.Convert(fn.Value, tag)
		if err != nil {
			return fmt.Errorf("node %s: initial value: %w", fn.Name, err)
		}
		built = parent.AddDataPoint(fn.Name, v, fn.Writable)

	case "procedure":
		args := make([]session.ArgumentDescriptor, 0, len(fn.Args))
		for _, a := range fn.Args {
			args = append(args, session.ArgumentDescriptor{
				Name: a.Name,
				Type: variant.ParseTag(a.Type),
			})
		}
		fn := fn
		built = parent.AddProcedure(fn.Name, args, func([]variant.Value) (variant.Value, error) {
			if fn.Result == nil {
				return variant.NewValue(variant.String, "ok"), nil
			}
			return variant.Convert(fn.Result.Value, variant.ParseTag(fn.Result.Type))
		})

	case "other":
		built = parent.AddOther(fn.Name)

	default:
		return fmt.Errorf("node %s: unknown kind %q", fn.Name, fn.Kind)
	}

	for _, child := range fn.Children {
		if err := buildNode(built, child); err != nil {
			return err
		}
	}
	return nil
}
