package category

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type defaultTable struct {
	Categories []string `yaml:"categories"`
	Rules      []struct {
		Keyword  string `yaml:"keyword"`
		Category string `yaml:"category"`
	} `yaml:"rules"`
}

// Defaults returns the built-in categories and keyword rules in table order.
func Defaults() ([]Category, []Rule, error) {
	var table defaultTable
	if err := yaml.Unmarshal(defaultsYAML, &table); err != nil {
		return nil, nil, fmt.Errorf("parsing default categories: %w", err)
	}

	cats := make([]Category, len(table.Categories))
	for i, name := range table.Categories {
		cats[i] = Category{Name: name, Position: i}
	}

	rules := make([]Rule, len(table.Rules))
	for i, r := range table.Rules {
		rules[i] = Rule{Keyword: NormalizeKeyword(r.Keyword), Category: r.Category, Position: i}
	}

	return cats, rules, nil
}
