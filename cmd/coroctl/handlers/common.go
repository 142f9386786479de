// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr/funcr"

	"github.com/imamik/coroctl/internal/config"
	"github.com/imamik/coroctl/internal/platform/awscloud"
	"github.com/imamik/coroctl/internal/provisioning"
)

// DefaultConfigFile is the config file looked for when none is given.
const DefaultConfigFile = "coroctl.yaml"

// logFormatEnv selects the provisioning log output; set to "json" for
// structured key/value lines instead of the console format.
const logFormatEnv = "COROCTL_LOG_FORMAT"

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newCloudClient creates the AWS client for a region.
	newCloudClient = func(ctx context.Context, region string) (awscloud.CloudManager, error) {
		return awscloud.NewRealClient(ctx, region)
	}

	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// writeFile writes data to a file.
	writeFile = os.WriteFile

	// newObserver builds the observer provisioning events are emitted
	// through.
	newObserver = func() provisioning.Observer {
		if os.Getenv(logFormatEnv) == "json" {
			logger := funcr.NewJSON(func(obj string) { log.Print(obj) }, funcr.Options{})
			return provisioning.NewLogrObserver(logger)
		}
		return provisioning.NewConsoleObserver()
	}
)

// loadConfig resolves the config path and loads the file.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = DefaultConfigFile
	}
	if !fileExists(configPath) {
		return nil, fmt.Errorf("config file %s not found; run 'coroctl init' to create one", configPath)
	}
	return loadConfigFile(configPath)
}
