package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/forecourt/forecourt-cli/pkg/api"
	"github.com/forecourt/forecourt-cli/pkg/files"
)

// CommandContext holds the loaded configuration and the backend client
// shared by the non-interactive commands.
type CommandContext struct {
	Config *files.Config
	Client *api.Client
}

// NewCommandContext loads the project config and builds the backend
// client from it.
func NewCommandContext() (*CommandContext, error) {
	config, err := files.ReadConfig()
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(config.Backend.TimeoutSeconds) * time.Second
	return &CommandContext{
		Config: config,
		Client: api.NewClientWithTimeout(config.Backend.BaseURL, timeout),
	}, nil
}

// ValidateProject ensures `forecourt init` has been run in this
// directory.
func (c *CommandContext) ValidateProject() error {
	if _, err := os.Stat(files.ForecourtDir); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'forecourt init' first", files.ForecourtDir)
	}
	return nil
}
