package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal encodes a board as YAML.
func Marshal(b *Board) ([]byte, error) {
	data, err := yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshaling board: %w", err)
	}
	return data, nil
}

// SaveToFile saves a board to a YAML file.
func SaveToFile(b *Board, path string) error {
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing board file: %w", err)
	}
	return nil
}
