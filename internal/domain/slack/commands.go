package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdGroup  CommandType = "group"
	CmdWeek   CommandType = "week"
	CmdShow   CommandType = "show"
	CmdSet    CommandType = "set"
	CmdClear  CommandType = "clear"
	CmdDishes CommandType = "dishes"
	CmdRoster CommandType = "roster"
	CmdConfig CommandType = "config"
	CmdPause  CommandType = "pause"
	CmdResume CommandType = "resume"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := SplitArgs(text)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "group", "age":
		cmd.Type = CmdGroup
	case "week":
		cmd.Type = CmdWeek
	case "show", "grid":
		cmd.Type = CmdShow
	case "set":
		cmd.Type = CmdSet
	case "clear":
		cmd.Type = CmdClear
	case "dishes", "dish":
		cmd.Type = CmdDishes
	case "roster", "allergies":
		cmd.Type = CmdRoster
	case "config":
		cmd.Type = CmdConfig
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// SplitArgs splits on whitespace, keeping double-quoted runs together.
// Slack's curly quotes are accepted too.
func SplitArgs(text string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)

	flush := func() {
		if started {
			args = append(args, current.String())
		}
		current.Reset()
		started = false
	}

	for _, r := range strings.TrimSpace(text) {
		switch {
		case r == '"' || r == '“' || r == '”':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n'):
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	return args
}

// SplitList splits a comma separated list of names, dropping blanks.
func SplitList(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetHelpText() string {
	return `*Available Commands:*

*Menu:*
• ` + "`/menu group NAME`" + ` - Select the age group shown in this channel
• ` + "`/menu week [this|next|prev|YYYY-MM-DD]`" + ` - Show another week
• ` + "`/menu show`" + ` - Show the current week's menu
• ` + "`/menu set MEAL WEEKDAY dish, dish`" + ` - Assign dishes to a slot (quote names with spaces)
• ` + "`/menu clear MEAL WEEKDAY`" + ` - Remove every dish from a slot
• ` + "`/menu dishes [MEAL] [search]`" + ` - Search the dish catalog
• ` + "`/menu roster`" + ` - Class sizes and allergy counts for the age group

*Daily post:*
• ` + "`/menu config time HH:MM`" + ` - Set the posting time (UTC+7, ex: 07:00)
• ` + "`/menu config days 1,2,3,4,5`" + ` - Set active days (1=Mon ... 7=Sun)
• ` + "`/menu pause`" + ` - Pause the daily post
• ` + "`/menu resume`" + ` - Resume the daily post
• ` + "`/menu status`" + ` - Show this channel's settings`
}
