package contract

import "github.com/slack-go/slack"

// SlackClient is the part of the Slack Web API the daily publisher needs.
type SlackClient interface {
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
