package pricing

import (
	"encoding/json"
	"fmt"
	"os"

	"moneybag/internal/models"
)

// FileSource reads a pricing config from a JSON file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load() (models.PricingConfig, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return models.PricingConfig{}, fmt.Errorf("read pricing config %s: %w", s.Path, err)
	}
	return DecodeConfig(data)
}

// DecodeConfig parses a pricing config document.
func DecodeConfig(data []byte) (models.PricingConfig, error) {
	var cfg models.PricingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.PricingConfig{}, fmt.Errorf("decode pricing config: %w", err)
	}
	return cfg, nil
}
