package cli

import (
	"fmt"
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/keyring"
)

type SecretSetCmd struct {
	Name  string `arg:"" help:"Secret name, ex: SLACK_BOT_TOKEN."`
	Value string `arg:"" help:"Secret value."`
}

func (c *SecretSetCmd) Run(ctx *Context) error {
	name := strings.ToUpper(c.Name)
	if !keyring.IsKnown(name) {
		return fmt.Errorf("unknown secret %s, expected one of %s", c.Name, strings.Join(keyring.Secrets, ", "))
	}
	if err := keyring.Set(name, c.Value); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "✓ %s stored in the OS keyring\n", name)
	return nil
}

type SecretDeleteCmd struct {
	Name string `arg:"" help:"Secret name."`
}

func (c *SecretDeleteCmd) Run(ctx *Context) error {
	name := strings.ToUpper(c.Name)
	if err := keyring.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "✓ %s removed from the OS keyring\n", name)
	return nil
}
