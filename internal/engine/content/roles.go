package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

//go:embed roles.yaml
var rolesYAML []byte

// Roles holds the worker role of each stage.
type Roles struct {
	Analyst    engine.Role `yaml:"analyst"`
	Writer     engine.Role `yaml:"writer"`
	Specialist engine.Role `yaml:"specialist"`
}

// DefaultRoles returns the embedded role definitions.
func DefaultRoles() Roles {
	r, err := ParseRoles(rolesYAML)
	if err != nil {
		panic(err) // embedded file is fixed at build time
	}
	return r
}

// ParseRoles decodes role definitions. Every role needs a name and a goal.
func ParseRoles(data []byte) (Roles, error) {
	var r Roles
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roles{}, fmt.Errorf("parse roles: %w", err)
	}
	for key, role := range map[string]engine.Role{
		"analyst": r.Analyst, "writer": r.Writer, "specialist": r.Specialist,
	} {
		if role.Name == "" || role.Goal == "" {
			return Roles{}, engine.ConfigError("role %q is missing a name or goal", key)
		}
	}
	return r, nil
}
