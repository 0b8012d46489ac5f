package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_SimpleStruct(t *testing.T) {
	type user struct {
		Name  string `json:"name" description:"User's full name"`
		Age   int    `json:"age,omitempty" description:"User's age"`
		Email string `json:"email"`
	}

	s, err := Generate(user{})
	require.NoError(t, err)
	require.Equal(t, Object, s.Type)
	require.Equal(t, 3, len(s.Properties))

	require.Equal(t, String, s.Properties["name"].Type)
	require.Equal(t, "User's full name", s.Properties["name"].Description)
	require.Equal(t, Integer, s.Properties["age"].Type)
	require.Equal(t, String, s.Properties["email"].Type)

	// age is omitempty, so not required
	require.ElementsMatch(t, []string{"name", "email"}, s.Required)
}

func TestGenerate_Enum(t *testing.T) {
	type analysis struct {
		Complexity string `json:"complexity" enum:"low,medium,high"`
	}

	s, err := Generate(analysis{})
	require.NoError(t, err)
	require.Equal(t, []string{"low", "medium", "high"}, s.Properties["complexity"].Enum)
}

func TestGenerate_SlicesAndNumbers(t *testing.T) {
	type report struct {
		Tables     []string `json:"tables"`
		Confidence float64  `json:"confidence"`
		Flags      []bool   `json:"flags"`
	}

	s, err := Generate(report{})
	require.NoError(t, err)
	require.Equal(t, Array, s.Properties["tables"].Type)
	require.Equal(t, String, s.Properties["tables"].Items.Type)
	require.Equal(t, Number, s.Properties["confidence"].Type)
	require.Equal(t, Boolean, s.Properties["flags"].Items.Type)
}

func TestGenerate_NestedStruct(t *testing.T) {
	type inner struct {
		CPUIntensive bool `json:"cpu_intensive"`
	}
	type outer struct {
		ResourceUsage inner `json:"resource_usage"`
	}

	s, err := Generate(outer{})
	require.NoError(t, err)
	usage := s.Properties["resource_usage"]
	require.Equal(t, Object, usage.Type)
	require.Equal(t, Boolean, usage.Properties["cpu_intensive"].Type)
	require.Equal(t, []string{"cpu_intensive"}, usage.Required)
}

func TestGenerate_SkipsUnexportedAndDashed(t *testing.T) {
	type thing struct {
		Public  string `json:"public"`
		Ignored string `json:"-"`
		hidden  string
	}
	_ = thing{}.hidden

	s, err := Generate(thing{})
	require.NoError(t, err)
	require.Equal(t, 1, len(s.Properties))
	require.Contains(t, s.Properties, "public")
}

func TestGenerate_RequiredTag(t *testing.T) {
	type thing struct {
		Optional string `json:"optional,omitempty" required:"true"`
		Skipped  string `json:"skipped" required:"false"`
	}

	s, err := Generate(thing{})
	require.NoError(t, err)
	require.Equal(t, []string{"optional"}, s.Required)
}

func TestGenerate_Pointer(t *testing.T) {
	type thing struct {
		Name string `json:"name"`
	}
	s, err := Generate(&thing{})
	require.NoError(t, err)
	require.Equal(t, Object, s.Type)
	require.Contains(t, s.Properties, "name")
}

func TestGenerate_Nil(t *testing.T) {
	_, err := Generate(nil)
	require.Error(t, err)
}

func TestGenerate_NonStruct(t *testing.T) {
	s, err := Generate("hello")
	require.NoError(t, err)
	require.Equal(t, String, s.Type)
	require.Empty(t, s.Properties)
}

func TestGenerate_UnsupportedType(t *testing.T) {
	type thing struct {
		Ch chan int `json:"ch"`
	}
	_, err := Generate(thing{})
	require.Error(t, err)
}
