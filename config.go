package tagcloud

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config customizes cloud generation defaults
type Config struct {
	Separators  string   `yaml:"separators"`
	MinFont     int      `yaml:"min-font"`
	MaxFont     int      `yaml:"max-font"`
	Stylesheets []string `yaml:"stylesheets"`
}

// DefaultCloudConfig is used for any Options field left unset. The runner
// replaces it with the user's saved cloud config when one exists.
var DefaultCloudConfig = Config{
	Separators:  DefaultSeparators,
	MinFont:     MinFontSize,
	MaxFont:     MaxFontSize,
	Stylesheets: DefaultStylesheets,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	cfg := Config{
		Separators:  DefaultSeparators,
		MinFont:     MinFontSize,
		MaxFont:     MaxFontSize,
		Stylesheets: DefaultStylesheets,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
