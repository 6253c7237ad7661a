package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/meal-schedule-bot/internal/domain"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/meal-schedule-bot/internal/domain/slack"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	menu          contract.MenuService
	signingSecret string
}

func New(menu contract.MenuService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		menu:          menu,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}

	channel, _, err := h.menu.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		logger.Error("failed to set up channel", "channel", slashCmd.ChannelID, "error", err)
		return h.createErrorResponse("Error setting up channel")
	}

	switch cmd.Type {
	case slackcmd.CmdGroup:
		return h.handleGroup(ctx, cmd, channel)
	case slackcmd.CmdWeek:
		return h.handleWeek(ctx, cmd, channel)
	case slackcmd.CmdShow:
		return h.handleShow(ctx, channel)
	case slackcmd.CmdSet:
		return h.handleSet(ctx, cmd, channel)
	case slackcmd.CmdClear:
		return h.handleClear(ctx, cmd, channel)
	case slackcmd.CmdDishes:
		return h.handleDishes(ctx, cmd)
	case slackcmd.CmdRoster:
		return h.handleRoster(ctx, channel)
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd, channel)
	case slackcmd.CmdPause:
		return h.handlePause(channel)
	case slackcmd.CmdResume:
		return h.handleResume(channel)
	case slackcmd.CmdStatus:
		return h.handleStatus(ctx, channel)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleGroup(ctx context.Context, cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please name an age group: `/menu group NAME`")
	}
	ref := strings.Join(cmd.Args, " ")

	ageGroup, grid, err := h.menu.SelectAgeGroup(ctx, channel, ref)
	if err != nil {
		return h.menuError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ This channel now shows *%s*.\n\n%s", ageGroup.Name, slackcmd.FormatGrid(ageGroup.Name, grid)),
	}
}

func (h *SlackHandler) handleWeek(ctx context.Context, cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	ref := "this"
	if len(cmd.Args) > 0 {
		ref = cmd.Args[0]
	}

	week, err := resolveWeek(ref, h.menu.CurrentWeek(channel))
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	grid, err := h.menu.ShowWeek(ctx, channel, week)
	if err != nil {
		return h.menuError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatGrid(h.ageGroupName(ctx, channel.AgeGroupID), grid),
	}
}

func (h *SlackHandler) handleShow(ctx context.Context, channel *entity.Channel) *slack.Msg {
	grid, err := h.menu.ShowCurrent(ctx, channel)
	if err != nil {
		return h.menuError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatGrid(h.ageGroupName(ctx, channel.AgeGroupID), grid),
	}
}

func (h *SlackHandler) handleSet(ctx context.Context, cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Use: `/menu set MEAL WEEKDAY dish, dish`")
	}

	dishes := slackcmd.SplitList(strings.Join(cmd.Args[2:], " "))
	if len(dishes) == 0 {
		return h.createErrorResponse("Name at least one dish, or use `/menu clear MEAL WEEKDAY`")
	}

	return h.saveSlot(ctx, channel, cmd.Args[0], cmd.Args[1], dishes)
}

func (h *SlackHandler) handleClear(ctx context.Context, cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/menu clear MEAL WEEKDAY`")
	}

	return h.saveSlot(ctx, channel, cmd.Args[0], cmd.Args[1], nil)
}

func (h *SlackHandler) saveSlot(ctx context.Context, channel *entity.Channel, mealRef, weekdayRef string, dishRefs []string) *slack.Msg {
	assignment, err := h.menu.SaveSlot(ctx, channel, mealRef, weekdayRef, dishRefs)
	if err != nil {
		return h.menuError(err)
	}

	cat, err := h.menu.Catalog(ctx)
	if err != nil {
		cat = &entity.Catalog{}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Saved " + slackcmd.FormatAssignment(cat, assignment),
	}
}

// handleDishes treats the first argument as a meal when the catalog knows it
// and everything else as the search text.
func (h *SlackHandler) handleDishes(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	var mealRef string
	args := cmd.Args

	if len(args) > 0 {
		cat, err := h.menu.Catalog(ctx)
		if err != nil {
			return h.menuError(err)
		}
		if _, ok := cat.FindMeal(args[0]); ok {
			mealRef, args = args[0], args[1:]
		}
	}

	dishes, err := h.menu.SearchDishes(ctx, mealRef, strings.Join(args, " "))
	if err != nil {
		return h.menuError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatDishes(dishes),
	}
}

func (h *SlackHandler) handleRoster(ctx context.Context, channel *entity.Channel) *slack.Msg {
	groups, err := h.menu.Roster(ctx, channel)
	if err != nil {
		return h.menuError(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatRoster(h.ageGroupName(ctx, channel.AgeGroupID), groups),
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command, channel *entity.Channel) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/menu config time HH:MM` or `/menu config days 1,2,3,4,5`")
	}

	configType := strings.ToLower(cmd.Args[0])
	configValue := strings.Join(cmd.Args[1:], "")

	if err := h.menu.UpdateSchedulerConfig(channel.ID, configType, configValue); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error updating configuration: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) handlePause(channel *entity.Channel) *slack.Msg {
	if err := h.menu.PauseScheduler(channel.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error pausing daily post: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Daily menu post paused. Use `/menu resume` to turn it back on.",
	}
}

func (h *SlackHandler) handleResume(channel *entity.Channel) *slack.Msg {
	if err := h.menu.ResumeScheduler(channel.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error resuming daily post: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "▶️ Daily menu post resumed.",
	}
}

func (h *SlackHandler) handleStatus(ctx context.Context, channel *entity.Channel) *slack.Msg {
	var b strings.Builder
	b.WriteString("*Channel status*\n")

	if channel.AgeGroupID == "" {
		b.WriteString("• Age group: _not selected_ (use `/menu group NAME`)\n")
	} else {
		fmt.Fprintf(&b, "• Age group: %s\n", h.ageGroupName(ctx, channel.AgeGroupID))
	}
	fmt.Fprintf(&b, "• Week: %s\n", h.menu.CurrentWeek(channel))

	scheduler, err := h.menu.GetSchedulerConfig(channel.ID)
	if err != nil {
		return h.createErrorResponse("Error loading daily post settings")
	}
	if scheduler == nil {
		b.WriteString("• Daily post: _not configured_")
	} else {
		state := "active"
		if !scheduler.IsEnabled {
			state = "paused"
		}
		fmt.Fprintf(&b, "• Daily post: %s at %s (UTC+7) on %s", state, scheduler.NotificationTime, formatDays(scheduler.ActiveDays))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// menuError turns a service error into a message the channel can act on.
func (h *SlackHandler) menuError(err error) *slack.Msg {
	var mutationErr *entity.SlotMutationError

	switch {
	case errors.Is(err, service.ErrNoAgeGroup):
		return h.createErrorResponse("No age group selected. Use `/menu group NAME` first.")
	case errors.Is(err, service.ErrStaleGrid):
		return h.createErrorResponse("The selection changed while loading. Please try again.")
	case errors.Is(err, service.ErrUnknownAgeGroup),
		errors.Is(err, service.ErrUnknownMeal),
		errors.Is(err, service.ErrUnknownWeekday),
		errors.Is(err, service.ErrUnknownDish):
		return h.createErrorResponse(capitalize(err.Error()))
	case errors.As(err, &mutationErr):
		logger.Warn("slot save failed", "error", err)
		return h.createErrorResponse(fmt.Sprintf("Could not save the slot, nothing was changed: %v", mutationErr.Err))
	default:
		logger.Error("menu command failed", "error", err)
		return h.createErrorResponse(fmt.Sprintf("Something went wrong: %v", err))
	}
}

func (h *SlackHandler) ageGroupName(ctx context.Context, ageGroupID string) string {
	cat, err := h.menu.Catalog(ctx)
	if err != nil {
		return ageGroupID
	}
	if g, ok := cat.FindAgeGroup(ageGroupID); ok {
		return g.Name
	}
	return ageGroupID
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		logger.Error("failed to encode slack response", "error", err)
	}
}

// resolveWeek reads this, next, prev or any date of the wanted week.
func resolveWeek(ref string, current civil.Week) (civil.Week, error) {
	switch strings.ToLower(ref) {
	case "this", "today":
		return civil.ThisWeek(), nil
	case "next":
		return current.Shift(1), nil
	case "prev", "previous", "last":
		return current.Shift(-1), nil
	}

	week, err := civil.ParseWeek(ref)
	if err != nil {
		return civil.Week{}, fmt.Errorf("invalid week %q. Use this, next, prev or YYYY-MM-DD", ref)
	}
	return week, nil
}

func formatDays(days []int) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, domain.ISOWeekdayName(d))
	}
	return strings.Join(names, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
