package nav

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileItem is the YAML shape of one navigation entry. Handlers cannot be
// expressed in a file; loaded items carry no OnClick.
type fileItem struct {
	ID       string     `yaml:"id"`
	Label    string     `yaml:"label"`
	Icon     string     `yaml:"icon"`
	Disabled bool       `yaml:"disabled"`
	Children []fileItem `yaml:"children"`
}

type fileTree struct {
	Items []fileItem `yaml:"items"`
}

// LoadTree reads a navigation tree from a YAML file.
func LoadTree(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	items, err := parseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func parseTree(data []byte) ([]Item, error) {
	var tree fileTree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	if len(tree.Items) == 0 {
		return nil, fmt.Errorf("menu file defines no items")
	}
	return convertItems(tree.Items)
}

func convertItems(entries []fileItem) ([]Item, error) {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("menu item %q has no id", entry.Label)
		}
		label := entry.Label
		if label == "" {
			label = entry.ID
		}
		item := Item{
			ID:       entry.ID,
			Label:    label,
			Icon:     entry.Icon,
			Disabled: entry.Disabled,
		}
		if len(entry.Children) > 0 {
			children, err := convertItems(entry.Children)
			if err != nil {
				return nil, err
			}
			item.Children = children
		}
		items = append(items, item)
	}
	return items, nil
}
