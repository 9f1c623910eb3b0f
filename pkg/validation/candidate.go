// Package validation enforces the input contract the index relies on but
// does not check itself: non-empty name and tag, score in 0..100.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shortlist/pkg/common"

	"github.com/go-playground/validator/v10"
)

const (
	MinScore = 0
	MaxScore = 100
)

var ErrInvalidScore = fmt.Errorf("score must be an integer %d-%d", MinScore, MaxScore)

// ErrChoiceRange marks a well-formed menu choice outside the menu.
var ErrChoiceRange = errors.New("choice out of range")

var validate = validator.New()

// CandidateInput is one candidate as typed by the user.
type CandidateInput struct {
	Name  string `validate:"required"`
	Tag   string `validate:"required"`
	Score int    `validate:"gte=0,lte=100"`
}

// Validate checks the input and reports every failing field in one error.
func (c *CandidateInput) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, ErrInvalidScore.Error())
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Record trims the text fields and converts the input after validating it.
func (c *CandidateInput) Record() (common.Record, error) {
	in := CandidateInput{
		Name:  strings.TrimSpace(c.Name),
		Tag:   strings.TrimSpace(c.Tag),
		Score: c.Score,
	}
	if err := in.Validate(); err != nil {
		return common.Record{}, err
	}
	return common.Record{Name: in.Name, Tag: in.Tag, Score: in.Score}, nil
}

// ParseScore parses one line of score input.
func ParseScore(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, ErrInvalidScore
	}
	if n < MinScore || n > MaxScore {
		return 0, ErrInvalidScore
	}
	return n, nil
}

// ParseChoice parses a menu selection in 1..limit.
func ParseChoice(line string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid input %q", strings.TrimSpace(line))
	}
	if n < 1 || n > limit {
		return n, fmt.Errorf("%w: %d not in 1-%d", ErrChoiceRange, n, limit)
	}
	return n, nil
}
