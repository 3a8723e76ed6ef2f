package econ

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAbsurdAmount  = errors.New("patch amount exceeds policy cap")
	ErrNegativeDelta = errors.New("negative value on delta-style field")
)

// PatchPolicy holds the numeric tolerances applied to StateUpdate patches
// before commit. These are configurable policy constants, not business law;
// deployments tune them in config rather than in code.
type PatchPolicy struct {
	// MaxAbsAmount caps the absolute value of any numeric patch field.
	MaxAbsAmount float64
	// DeltaFieldSubstrings marks field names whose values must never be
	// negative when matched by substring.
	DeltaFieldSubstrings []string
}

func DefaultPatchPolicy() PatchPolicy {
	return PatchPolicy{
		MaxAbsAmount:         1_000_000,
		DeltaFieldSubstrings: []string{"delta"},
	}
}

// ValidateBatch applies the policy to every update in a batch.
func (p PatchPolicy) ValidateBatch(updates []StateUpdate) error {
	for i, u := range updates {
		if err := p.ValidateUpdate(u); err != nil {
			return fmt.Errorf("update %d (%s %s): %w", i, u.Op, u.Table, err)
		}
	}
	return nil
}

func (p PatchPolicy) ValidateUpdate(u StateUpdate) error {
	for field, raw := range u.Patch {
		value, numeric := numericValue(raw)
		if !numeric {
			continue
		}
		if p.MaxAbsAmount > 0 && (value > p.MaxAbsAmount || value < -p.MaxAbsAmount) {
			return fmt.Errorf("field %q value %v: %w", field, value, ErrAbsurdAmount)
		}
		if value < 0 && p.matchesDeltaField(field) {
			return fmt.Errorf("field %q value %v: %w", field, value, ErrNegativeDelta)
		}
	}
	return nil
}

func (p PatchPolicy) matchesDeltaField(field string) bool {
	lower := strings.ToLower(field)
	for _, sub := range p.DeltaFieldSubstrings {
		if sub != "" && strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case Increment:
		return v.By, true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
