package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up from the working directory upward.
const FileName = ".doccheck.yaml"

// DefaultCorpus is used when neither the command line nor the config names a directory.
const DefaultCorpus = "docs"

const (
	SyntaxPattern  = "pattern"
	SyntaxMarkdown = "markdown"
)

// Var is one entry of the ordered vars mapping.
type Var struct {
	Key   string
	Value string
}

// OrderedVars preserves the declaration order of the vars mapping so that
// later entries can reference earlier ones.
type OrderedVars []Var

func (o *OrderedVars) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("vars: expected a mapping, got %s", nodeKind(node))
	}
	vars := make(OrderedVars, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("vars: %q must be a scalar value", k.Value)
		}
		vars = append(vars, Var{Key: k.Value, Value: v.Value})
	}
	*o = vars
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

type Links struct {
	Extension string `yaml:"extension"`
	Recursive bool   `yaml:"recursive"`
	Syntax    string `yaml:"syntax"`
}

type Commands struct {
	Timeout  int      `yaml:"timeout"` // seconds per probe
	Parallel int      `yaml:"parallel"`
	Run      []string `yaml:"run"`
}

type Deprecated struct {
	Patterns []string `yaml:"patterns"`
}

type Config struct {
	Corpus     string      `yaml:"corpus"`
	Vars       OrderedVars `yaml:"vars"`
	Links      Links       `yaml:"links"`
	Commands   Commands    `yaml:"commands"`
	Deprecated Deprecated  `yaml:"deprecated"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	cfg := &Config{}
	// Validate only fills defaults on an empty config.
	_ = Validate(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
