package volstat

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Configuration describes the volumes the monitor watches and the limits
// below which it raises an alert.
type Configuration struct {
	Paths          []string `json:"paths"`
	CheckInterval  string   `json:"check_interval"`
	MinFreeSpace   int64    `json:"min_free_space"`
	MinFreeInodes  int64    `json:"min_free_inodes"`
	SlackToken     string   `json:"slack_token"`
	SlackChannelID string   `json:"slack_channel_id"`
}

// Interval returns CheckInterval as a duration.
func (c Configuration) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.CheckInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid check_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid check_interval: %q must be positive", c.CheckInterval)
	}
	return d, nil
}

// CreateTemplateConfig writes an example configuration to filePath.
//
// Parameters:
// - filePath: The file to create.
//
// Returns:
// - error: An error object if the file could not be written.
func CreateTemplateConfig(filePath string) error {
	templateConfig := Configuration{
		Paths:         []string{"/", "/tmp"},
		CheckInterval: "1m",
		MinFreeSpace:  10000 * 1024 * 1024, // 10 GB
		MinFreeInodes: 10000,
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(templateConfig)
}

// ReadConfigFromFile loads a configuration from filePath and validates its
// check interval. Empty Slack settings fall back to the SLACK_TOKEN and
// SLACK_CHANNEL_ID environment variables.
//
// Parameters:
// - filePath: The JSON configuration file.
//
// Returns:
// - Configuration: The parsed configuration.
// - error: An error object if the file could not be read or is invalid.
func ReadConfigFromFile(filePath string) (Configuration, error) {
	var config Configuration
	file, err := os.Open(filePath)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	if len(config.Paths) == 0 {
		return config, fmt.Errorf("no paths configured in %s", filePath)
	}
	duration, err := config.Interval()
	if err != nil {
		return config, err
	}
	config.CheckInterval = duration.String()

	if config.SlackToken == "" {
		config.SlackToken = os.Getenv("SLACK_TOKEN")
	}
	if config.SlackChannelID == "" {
		config.SlackChannelID = os.Getenv("SLACK_CHANNEL_ID")
	}
	return config, nil
}
