package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/ozzus/flight-filters/internal/config"
	derr "github.com/ozzus/flight-filters/internal/domain/errors"
)

// Build turns the configured rule chain into rules evaluated at now, keeping
// the configured order.
func Build(cfgs []config.RuleConfig, now time.Time) ([]Rule, error) {
	const op = "rules.Build"

	result := make([]Rule, 0, len(cfgs))
	for i, c := range cfgs {
		rule, err := buildOne(c, now)
		if err != nil {
			return nil, fmt.Errorf("%s: rules[%d]: %w", op, i, err)
		}
		result = append(result, rule)
	}
	return result, nil
}

func buildOne(c config.RuleConfig, now time.Time) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(c.Type)) {
	case config.RuleDeparted:
		return NewDepartedRule(now), nil
	case config.RuleArrivalBeforeDeparture:
		return NewArrivalBeforeDepartureRule(), nil
	case config.RuleGroundTime:
		if c.MaxGroundTime < 0 || c.Precision < 0 {
			return nil, fmt.Errorf("negative ground time parameters: %w", derr.ErrInvalidRuleConfig)
		}
		return NewGroundTimeRule(c.MaxGroundTime, c.Precision), nil
	case config.RuleExpression:
		return NewExpressionRule(c.Name, c.Expression, now)
	default:
		return nil, fmt.Errorf("%q: %w", c.Type, derr.ErrUnknownRule)
	}
}
