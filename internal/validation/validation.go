// Package validation enforces the task creation policy and loop-item edits
// before anything reaches the day store.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/models"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrInvalidPoints = errors.New("points must be a positive whole number")
	ErrEmptyTime     = errors.New("time cannot be empty")
	ErrLoopNotFound  = errors.New("loop item not found")
)

// CeilingError rejects a task that would push the day past the point ceiling.
type CeilingError struct {
	Remaining int
}

func (e *CeilingError) Error() string {
	return fmt.Sprintf("That would exceed %d points! You only have %d points left.", constants.PointCeiling, e.Remaining)
}

// NewTask is a task request that passed the creation policy.
type NewTask struct {
	Name   string
	Points int
	Time   string
}

// ParsePoints reads a points field typed by the user.
func ParsePoints(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, ErrInvalidPoints
	}
	return n, nil
}

// ValidateTask applies the creation policy against the points already planned.
// The ceiling is inclusive: reaching exactly 100 is allowed.
func ValidateTask(name string, points int, clock string, totalPlanned int) (NewTask, error) {
	name = strings.TrimSpace(name)
	clock = strings.TrimSpace(clock)

	if name == "" {
		return NewTask{}, ErrEmptyName
	}
	if points <= 0 {
		return NewTask{}, ErrInvalidPoints
	}
	if clock == "" {
		return NewTask{}, ErrEmptyTime
	}
	if totalPlanned+points > constants.PointCeiling {
		return NewTask{}, &CeilingError{Remaining: constants.PointCeiling - totalPlanned}
	}

	return NewTask{Name: name, Points: points, Time: clock}, nil
}

// AddLoopItem appends a placeholder habit with the given id.
func AddLoopItem(items []models.LoopItem, id string) []models.LoopItem {
	out := make([]models.LoopItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, models.LoopItem{
		ID:   id,
		Name: constants.DefaultLoopItemName,
		Time: constants.DefaultLoopItemTime,
	})
}

// EditLoopItem renames and retimes the item with id. The trimmed name must be non-empty.
func EditLoopItem(items []models.LoopItem, id, name, clock string) ([]models.LoopItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	out := make([]models.LoopItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == id {
			out[i].Name = name
			out[i].Time = strings.TrimSpace(clock)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLoopNotFound, id)
}

// DeleteLoopItem drops the item with id. Checks recorded against it are left alone.
func DeleteLoopItem(items []models.LoopItem, id string) ([]models.LoopItem, error) {
	out := make([]models.LoopItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		out = append(out, item)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrLoopNotFound, id)
	}
	return out, nil
}
