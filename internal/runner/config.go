package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/tagcloud"
	fileutil "github.com/projectdiscovery/utils/file"
	"gopkg.in/yaml.v3"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	configDir := filepath.Join(getUserHomeDir(), ".config/tagcloud")
	defaultCloudCfg := filepath.Join(configDir, "cloud.yaml")
	// create default cloud.yaml config if does not exist
	if fileutil.FileExists(defaultCloudCfg) {
		// if it exists use that data as default
		if bin, err := os.ReadFile(defaultCloudCfg); err == nil {
			var cfg tagcloud.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				tagcloud.DefaultCloudConfig = cfg
				return
			}
		}
	}
	if err := fileutil.CreateFolder(configDir); err != nil {
		gologger.Error().Msgf("failed to create config dir %v got: %v", configDir, err)
		return
	}
	if err := tagcloud.GenerateSample(defaultCloudCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultCloudCfg, err)
	}
}
