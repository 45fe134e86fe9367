package matching

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var rawTables []byte

type categoryEntry struct {
	Category Category `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Skills   []string `yaml:"skills"`
}

type matchingTables struct {
	Abbreviations map[string]string       `yaml:"abbreviations"`
	SynonymGroups [][]string              `yaml:"synonym_groups"`
	Categories    []categoryEntry         `yaml:"categories"`
	Hierarchy     map[Category][]Category `yaml:"hierarchy"`
}

var (
	tables matchingTables

	// synonymGroupOf maps a normalized skill to the index of its synonym
	// group. A skill belongs to at most one group.
	synonymGroupOf map[string]int
)

func init() {
	if err := yaml.Unmarshal(rawTables, &tables); err != nil {
		panic(fmt.Sprintf("matching: embedded tables are invalid: %v", err))
	}
	synonymGroupOf = make(map[string]int)
	for i, group := range tables.SynonymGroups {
		for _, s := range group {
			synonymGroupOf[NormalizeSkill(s)] = i
		}
	}
}
