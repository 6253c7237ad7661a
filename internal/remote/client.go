// Package remote talks to the school's menu store over HTTP/JSON.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
)

// ErrNotFound is returned for a 404 from the store.
var ErrNotFound = errors.New("remote resource not found")

// StatusError is a non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ contract.RemoteStore = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("remote store url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid remote store url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) ReadMeals(ctx context.Context) ([]entity.MealType, error) {
	var out []namedItem
	if err := c.get(ctx, "/meals", nil, &out); err != nil {
		return nil, err
	}
	meals := make([]entity.MealType, 0, len(out))
	for _, item := range out {
		meals = append(meals, entity.MealType{ID: string(item.ID), Name: item.Name})
	}
	return meals, nil
}

func (c *Client) ReadWeekdays(ctx context.Context) ([]entity.Weekday, error) {
	var out []namedItem
	if err := c.get(ctx, "/weekdays", nil, &out); err != nil {
		return nil, err
	}
	weekdays := make([]entity.Weekday, 0, len(out))
	for _, item := range out {
		weekdays = append(weekdays, entity.Weekday{ID: string(item.ID), Name: item.Name})
	}
	return weekdays, nil
}

func (c *Client) ReadAgeGroups(ctx context.Context) ([]entity.AgeGroup, error) {
	var out []namedItem
	if err := c.get(ctx, "/class-ages", nil, &out); err != nil {
		return nil, err
	}
	groups := make([]entity.AgeGroup, 0, len(out))
	for _, item := range out {
		groups = append(groups, entity.AgeGroup{ID: string(item.ID), Name: item.Name})
	}
	return groups, nil
}

func (c *Client) ReadDishes(ctx context.Context) ([]entity.Dish, error) {
	var out []dishItem
	if err := c.get(ctx, "/dishes", nil, &out); err != nil {
		return nil, err
	}
	return toDishes(out), nil
}

func (c *Client) ReadSlot(ctx context.Context, q entity.SlotQuery) ([]entity.Dish, error) {
	var out slotBody
	if err := c.get(ctx, "/menus/slot", slotParams(q), &out); err != nil {
		return nil, err
	}
	return toDishes(out.Dishes), nil
}

func (c *Client) WriteSlot(ctx context.Context, q entity.SlotQuery, dishIDs []string) error {
	if dishIDs == nil {
		dishIDs = []string{}
	}
	body := slotWrite{
		ClassAgeID: q.AgeGroupID,
		MealID:     q.MealID,
		WeekdayID:  q.WeekdayID,
		Date:       q.Instant().UTC().Format(time.RFC3339),
		DishIDs:    dishIDs,
	}
	return c.do(ctx, http.MethodPut, "/menus/slot", nil, body, nil)
}

func (c *Client) ReadClasses(ctx context.Context, ageGroupID string) ([]entity.ClassInfo, error) {
	var out []classItem
	if err := c.get(ctx, "/class-ages/"+url.PathEscape(ageGroupID)+"/classes", nil, &out); err != nil {
		return nil, err
	}
	classes := make([]entity.ClassInfo, 0, len(out))
	for _, item := range out {
		classes = append(classes, entity.ClassInfo{
			ID:           string(item.ID),
			Name:         item.Name,
			AcademicYear: item.AcademicYear,
			AgeGroupID:   string(item.ClassAgeID),
		})
	}
	return classes, nil
}

func (c *Client) ReadStudents(ctx context.Context, classID string) ([]entity.Student, error) {
	var out []studentItem
	if err := c.get(ctx, "/classes/"+url.PathEscape(classID)+"/students", nil, &out); err != nil {
		return nil, err
	}
	students := make([]entity.Student, 0, len(out))
	for _, item := range out {
		students = append(students, entity.Student{ID: string(item.ID), Name: item.Name, Allergy: item.Allergy})
	}
	return students, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	logger.Debug("remote call", "method", method, "path", path, "status", res.StatusCode, "took", time.Since(start))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &StatusError{Method: method, Path: path, Code: res.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func slotParams(q entity.SlotQuery) url.Values {
	return url.Values{
		"classAgeId": {q.AgeGroupID},
		"mealId":     {q.MealID},
		"weekdayId":  {q.WeekdayID},
		"date":       {q.Instant().UTC().Format(time.RFC3339)},
	}
}
