package cartridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var validROMExtensions = []string{".gb", ".gbc", ".rom"}

// LoadFromFile reads a ROM image from disk and parses it into a Cartridge.
func LoadFromFile(filename string) (*Cartridge, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}
	if !hasValidExtension(filename) {
		return nil, fmt.Errorf("invalid ROM file extension: %s (expected .gb, .gbc, or .rom)", filepath.Ext(filename))
	}

	romData, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM file %s: %w", filename, err)
	}

	cart, err := New(romData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cartridge from %s: %w", filename, err)
	}
	return cart, nil
}

func hasValidExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, valid := range validROMExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}
