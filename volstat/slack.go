package volstat

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Notifier delivers monitor alerts.
type Notifier interface {
	Notify(message string) error
}

// SlackNotifier posts alerts to a Slack channel.
type SlackNotifier struct {
	client    *slack.Client
	channelID string
}

// NewSlackNotifier returns a notifier for the configured Slack channel, or
// nil if the configuration has no token or channel.
func NewSlackNotifier(config Configuration) *SlackNotifier {
	if config.SlackToken == "" || config.SlackChannelID == "" {
		return nil
	}
	return &SlackNotifier{
		client:    slack.New(config.SlackToken),
		channelID: config.SlackChannelID,
	}
}

// Notify posts message to the configured channel.
func (n *SlackNotifier) Notify(message string) error {
	_, _, err := n.client.PostMessage(
		n.channelID,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack notification: %w", err)
	}
	return nil
}

// TestSlackCredentials reports whether token authenticates with Slack.
func TestSlackCredentials(token string) bool {
	client := slack.New(token)
	authTest, err := client.AuthTest()
	if err != nil {
		LogWithDatetime(fmt.Sprintf("Failed to authenticate with Slack: %v", err))
		return false
	}
	LogWithDatetime(fmt.Sprintf("Successfully authenticated with Slack. User ID: %v", authTest.UserID))
	return true
}
