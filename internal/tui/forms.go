package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/score100/internal/constants"
	"github.com/julianstephens/score100/internal/utils"
	"github.com/julianstephens/score100/internal/validation"
)

// NewTaskForm collects a task. Points are checked against what is already planned.
func NewTaskForm(fm *TaskFormModel, totalPlanned int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What needs doing?").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return validation.ErrEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Points").
				Description(fmt.Sprintf("%d points left to plan", constants.PointCeiling-totalPlanned)).
				Value(&fm.Points).
				Validate(func(s string) error {
					points, err := validation.ParsePoints(s)
					if err != nil {
						return err
					}
					if totalPlanned+points > constants.PointCeiling {
						return &validation.CeilingError{Remaining: constants.PointCeiling - totalPlanned}
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Placeholder("09:00 AM").
				Value(&fm.Time).
				Validate(validateClock),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewLoopForm edits one habit's name and time.
func NewLoopForm(fm *LoopFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return validation.ErrEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Time").
				Value(&fm.Time).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validateClock(s)
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewCloseForm asks today's reflection question and confirms the close.
func NewCloseForm(fm *CloseFormModel, prompt string, points int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(prompt).
				Description("Your reflection is saved with today's score.").
				Value(&fm.Journal),
			huh.NewConfirm().
				Title(fmt.Sprintf("Close today with %d points?", points)).
				Affirmative("Close day").
				Negative("Not yet").
				Value(&fm.Confirm),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return validation.ErrEmptyTime
	}
	if !utils.ValidateClock(s) {
		return errors.New("use a time like 09:00 AM")
	}
	return nil
}
