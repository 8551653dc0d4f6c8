// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent holds the built-in content agent definitions and loads
// overrides from YAML definition files. An agent bundles a category, its
// upstream sources, its subcategory taxonomy, and per-agent tuning.
package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/finro/content-engine/pkg/types"
)

// Lookup returns the agent definition for name, consulting YAML files in
// defsDir first (when non-empty) and the built-in definitions second. A
// definition file named <agent>.yaml fully replaces the built-in agent of
// the same name.
func Lookup(name, defsDir string) (types.AgentDefinition, error) {
	if defsDir != "" {
		def, err := loadFile(filepath.Join(defsDir, name+".yaml"))
		if err == nil {
			return def, nil
		}
		if !os.IsNotExist(err) {
			return types.AgentDefinition{}, err
		}
	}

	for _, def := range builtins {
		if def.Name == name {
			return def, nil
		}
	}
	return types.AgentDefinition{}, fmt.Errorf("unknown agent %q (available: %s)", name, strings.Join(Names(defsDir), ", "))
}

// Names lists the available agent names, built-ins plus any YAML
// definitions, sorted.
func Names(defsDir string) []string {
	seen := make(map[string]struct{})
	for _, def := range builtins {
		seen[def.Name] = struct{}{}
	}
	if defsDir != "" {
		if entries, err := os.ReadDir(defsDir); err == nil {
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
					seen[strings.TrimSuffix(e.Name(), ".yaml")] = struct{}{}
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// loadFile reads and validates one YAML agent definition.
func loadFile(path string) (types.AgentDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.AgentDefinition{}, err
	}
	var def types.AgentDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return types.AgentDefinition{}, fmt.Errorf("parsing agent definition %s: %w", path, err)
	}
	if err := validate(&def); err != nil {
		return types.AgentDefinition{}, fmt.Errorf("agent definition %s: %w", path, err)
	}
	return def, nil
}

// validate fills defaults and rejects definitions the pipeline cannot run.
func validate(def *types.AgentDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("missing name")
	}
	if def.Category == "" {
		def.Category = def.Name
	}
	if len(def.Sources) == 0 {
		return fmt.Errorf("no sources declared")
	}
	for i, src := range def.Sources {
		if src.ID == "" || src.URL == "" {
			return fmt.Errorf("source %d: id and url are required", i)
		}
		if src.Type != types.SourceRSS && src.Type != types.SourceScrape {
			return fmt.Errorf("source %s: unknown type %q", src.ID, src.Type)
		}
		if src.Type == types.SourceScrape && src.Selector == "" {
			return fmt.Errorf("source %s: scrape sources need a selector", src.ID)
		}
	}
	if def.MaxArticles <= 0 {
		def.MaxArticles = 5
	}
	if def.ContentCap <= 0 {
		def.ContentCap = 2000
	}
	return nil
}
