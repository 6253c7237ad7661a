package service

import (
	"context"
	"errors"
	"sync"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
)

var (
	// ErrStaleGrid is returned when a newer selection superseded the refresh.
	ErrStaleGrid = errors.New("grid selection changed while loading")
	// ErrNoSelection is returned when editing a board nobody selected yet.
	ErrNoSelection = errors.New("no age group and week selected")
)

// Selector is what a board shows: one age group for one week.
type Selector struct {
	AgeGroupID string
	Week       civil.Week
}

// Board holds the grid currently shown for one selector. Every Select bumps
// the generation; results produced under an older generation are dropped.
// The lock is never held across remote calls.
type Board struct {
	grids contract.GridService

	mu         sync.Mutex
	generation uint64
	selector   Selector
	grid       entity.Grid
}

func NewBoard(grids contract.GridService) *Board {
	return &Board{grids: grids}
}

// Select replaces the board content with a freshly refreshed grid.
func (b *Board) Select(ctx context.Context, sel Selector, cat *entity.Catalog) (entity.Grid, error) {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	b.selector = sel
	b.grid = entity.EmptyGrid(sel.AgeGroupID, sel.Week)
	b.mu.Unlock()

	grid := b.grids.RefreshGrid(ctx, sel.AgeGroupID, sel.Week, cat.Meals, cat.Weekdays)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		logger.Debug("dropping stale grid", "age_group", sel.AgeGroupID, "week", sel.Week, "generation", gen)
		return entity.Grid{}, ErrStaleGrid
	}
	b.grid = grid
	return grid, nil
}

// Current returns the selector and grid being shown.
func (b *Board) Current() (Selector, entity.Grid) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selector, b.grid
}

// SaveSlot saves one slot of the current selection and patches the confirmed
// assignment into the grid. On error the grid is left as it was. A save that
// completes after a new Select still took effect remotely but is not patched
// into the newer grid.
func (b *Board) SaveSlot(ctx context.Context, mealID, weekdayID string, dishIDs []string) (entity.SlotAssignment, error) {
	b.mu.Lock()
	gen, sel, grid := b.generation, b.selector, b.grid
	b.mu.Unlock()

	if sel.AgeGroupID == "" || sel.Week.IsZero() {
		return entity.SlotAssignment{}, ErrNoSelection
	}
	key := entity.SlotKey{MealID: mealID, WeekdayID: weekdayID}
	if _, ok := grid.Slot(key); !ok {
		return entity.SlotAssignment{}, entity.ErrUnknownSlot
	}
	offset, _ := grid.OffsetOf(weekdayID)

	a, err := b.grids.SaveSlot(ctx, entity.SlotWrite{
		AgeGroupID: sel.AgeGroupID,
		MealID:     mealID,
		WeekdayID:  weekdayID,
		Date:       sel.Week.Date(offset),
		DishIDs:    dishIDs,
	})
	if err != nil {
		return entity.SlotAssignment{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		logger.Debug("slot saved under a superseded selection", "slot", key, "date", a.Date)
		return a, nil
	}

	patched, err := b.grid.With(a)
	if err != nil {
		return entity.SlotAssignment{}, err
	}
	b.grid = patched
	return a, nil
}

// BoardRegistry keeps one board per Slack channel.
type BoardRegistry struct {
	grids contract.GridService

	mu     sync.Mutex
	boards map[string]*Board
}

func NewBoardRegistry(grids contract.GridService) *BoardRegistry {
	return &BoardRegistry{grids: grids, boards: make(map[string]*Board)}
}

func (r *BoardRegistry) For(key string) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.boards[key]
	if !ok {
		b = NewBoard(r.grids)
		r.boards[key] = b
	}
	return b
}
