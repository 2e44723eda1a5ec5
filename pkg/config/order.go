package config

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"
)

// tableOrder lists the top-level tables of a config file in the order they
// first appear. koanf hands back maps, which lose it.
func tableOrder(path string, data []byte) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlTableOrder(data)
	default:
		return tomlTableOrder(data)
	}
}

func tomlTableOrder(data []byte) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	p := unstable.Parser{}
	p.Reset(data)

	inRoot := true
	for p.NextExpression() {
		e := p.Expression()

		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			inRoot = false
			if first, ok := firstKey(e); ok {
				add(first)
			}
		case unstable.KeyValue:
			// dotted root keys, e.g. backend_x.backendid = "x"
			if !inRoot {
				continue
			}
			it := e.Key()
			var parts []string
			for it.Next() {
				parts = append(parts, string(it.Node().Data))
			}
			if len(parts) > 1 {
				add(parts[0])
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return names, nil
}

func firstKey(e *unstable.Node) (string, bool) {
	it := e.Key()
	if !it.Next() {
		return "", false
	}
	return string(it.Node().Data), true
}

func yamlTableOrder(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nil
	}

	var names []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind == yaml.MappingNode {
			names = append(names, key.Value)
		}
	}
	return names, nil
}
