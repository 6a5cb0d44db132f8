package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/shopping/internal/model"
)

// Load reads the list a session starts with. Seed files are never written
// back; the session lives in memory only.
//
// Format is picked by extension: .yaml/.yml is YAML, anything else JSON.
//
//	[{"name": "apples"}, {"name": "milk", "checked": true}]
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var items []model.Item
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
