package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed personas.yaml
var personasYAML []byte

//go:embed rules.yaml
var rulesYAML []byte

// Persona is a detailed expert identity used by the role-playing demo.
type Persona struct {
	Name          string   `yaml:"name"`
	Title         string   `yaml:"title"`
	Company       string   `yaml:"company"`
	Experience    string   `yaml:"experience"`
	Specialties   []string `yaml:"specialties"`
	PreviousRoles []string `yaml:"previous_roles"`
	Achievements  string   `yaml:"achievements"`
	Style         string   `yaml:"style"`
	RiskTolerance string   `yaml:"risk_tolerance"`
	Concerns      []string `yaml:"concerns"`
}

// SystemPrompt renders the persona as a system prompt.
func (p *Persona) SystemPrompt() string {
	return fmt.Sprintf(`You are %s, a %s at %s.

Background:
- Experience: %s
- Specialties: %s
- Previous roles: %s
- Notable achievements: %s

Your personality:
- Communication style: %s
- Risk tolerance: %s
- Primary concerns: %s

Approach this analysis as %s would, considering your background and personality.`,
		p.Name, p.Title, p.Company,
		p.Experience,
		strings.Join(p.Specialties, ", "),
		strings.Join(p.PreviousRoles, ", "),
		p.Achievements,
		p.Style,
		p.RiskTolerance,
		strings.Join(p.Concerns, ", "),
		p.Name)
}

// RuleCategory is a named group of constraint rules.
type RuleCategory struct {
	Name  string   `yaml:"name"`
	Rules []string `yaml:"rules"`
}

// RuleSet is a named collection of rule categories used by the
// constraint-based prompting demo.
type RuleSet struct {
	Name       string         `yaml:"name"`
	Categories []RuleCategory `yaml:"categories"`
}

// ConstraintsText renders the rule set as the mandatory-constraints
// block of a prompt.
func (r *RuleSet) ConstraintsText() string {
	var sb strings.Builder
	sb.WriteString("MANDATORY CONSTRAINTS:\n")
	for _, category := range r.Categories {
		sb.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category.Name)))
		for _, rule := range category.Rules {
			sb.WriteString(fmt.Sprintf("  - %s\n", rule))
		}
	}
	return sb.String()
}

type personasFile struct {
	Personas []*Persona `yaml:"personas"`
}

type ruleSetsFile struct {
	RuleSets []*RuleSet `yaml:"rule_sets"`
}

// LoadPersonas parses the embedded persona definitions.
func LoadPersonas() ([]*Persona, error) {
	var file personasFile
	if err := yaml.Unmarshal(personasYAML, &file); err != nil {
		return nil, fmt.Errorf("error parsing personas: %w", err)
	}
	return file.Personas, nil
}

// LoadRuleSets parses the embedded constraint rule sets.
func LoadRuleSets() ([]*RuleSet, error) {
	var file ruleSetsFile
	if err := yaml.Unmarshal(rulesYAML, &file); err != nil {
		return nil, fmt.Errorf("error parsing rule sets: %w", err)
	}
	return file.RuleSets, nil
}

// GetRuleSet returns the named rule set from the embedded definitions.
func GetRuleSet(name string) (*RuleSet, error) {
	ruleSets, err := LoadRuleSets()
	if err != nil {
		return nil, err
	}
	for _, rs := range ruleSets {
		if rs.Name == name {
			return rs, nil
		}
	}
	return nil, fmt.Errorf("unknown rule set: %q", name)
}
