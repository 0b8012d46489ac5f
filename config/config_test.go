package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPersonas(t *testing.T) {
	personas, err := LoadPersonas()
	require.NoError(t, err)
	require.Len(t, personas, 2)

	alex := personas[0]
	require.Equal(t, "Alex Chen", alex.Name)
	require.Equal(t, "Senior Data Engineer", alex.Title)
	require.Equal(t, "TechCorp", alex.Company)
	require.NotEmpty(t, alex.Specialties)
	require.NotEmpty(t, alex.Concerns)

	morgan := personas[1]
	require.Equal(t, "Morgan Taylor", morgan.Name)
	require.Equal(t, "Lead Security Engineer", morgan.Title)
}

func TestPersonaSystemPrompt(t *testing.T) {
	personas, err := LoadPersonas()
	require.NoError(t, err)

	prompt := personas[0].SystemPrompt()
	require.Contains(t, prompt, "You are Alex Chen")
	require.Contains(t, prompt, "Senior Data Engineer at TechCorp")
	require.Contains(t, prompt, "Background:")
	require.Contains(t, prompt, "Your personality:")
}

func TestLoadRuleSets(t *testing.T) {
	ruleSets, err := LoadRuleSets()
	require.NoError(t, err)
	require.Len(t, ruleSets, 3)

	names := make([]string, 0, len(ruleSets))
	for _, rs := range ruleSets {
		names = append(names, rs.Name)
		require.NotEmpty(t, rs.Categories)
	}
	require.Equal(t, []string{"security", "performance", "conflicting"}, names)
}

func TestGetRuleSet(t *testing.T) {
	security, err := GetRuleSet("security")
	require.NoError(t, err)
	require.Len(t, security.Categories, 3)

	_, err = GetRuleSet("nonexistent")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown rule set")
}

func TestConstraintsText(t *testing.T) {
	security, err := GetRuleSet("security")
	require.NoError(t, err)

	text := security.ConstraintsText()
	require.Contains(t, text, "MANDATORY CONSTRAINTS:")
	require.Contains(t, text, "SECURITY:")
	require.Contains(t, text, "  - ")
}

func TestCheckCredentials(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	err := CheckCredentials()
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvAPIKey)

	t.Setenv(EnvAPIKey, "sk-or-test")
	require.NoError(t, CheckCredentials())
}

func TestGetModel(t *testing.T) {
	client := GetModel("")
	require.Equal(t, "openrouter", client.Name())
}
