package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSimParamsWeightsSumToOne(t *testing.T) {
	params := DefaultSimParams()
	sum := params.WeightPreference + params.WeightAffordability + params.WeightMoodHealth
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestBaseMoneyLookup(t *testing.T) {
	params := DefaultSimParams()

	assert.InDelta(t, 5.00, params.BaseMoney(AnswerMoneyLow, IncomeLow), 1e-9)
	assert.InDelta(t, 8.50, params.BaseMoney(AnswerMoneyMedium, IncomeMedium), 1e-9)
	assert.InDelta(t, 14.00, params.BaseMoney(AnswerMoneyHigh, IncomeHigh), 1e-9)

	// Unmapped combinations fall back to the medium default.
	assert.InDelta(t, params.DefaultBaseMoney, params.BaseMoney("", IncomeHigh), 1e-9)
	assert.InDelta(t, params.DefaultBaseMoney, params.BaseMoney(AnswerMoneyHigh, "Unknown"), 1e-9)
}

func TestFuzzyThresholdOrdering(t *testing.T) {
	params := DefaultSimParams()
	assert.Greater(t, params.FuzzyThresholdHigh, params.FuzzyThresholdMedium)
	assert.Greater(t, params.BonusFuzzyMatchHigh, params.BonusFuzzyMatchMedium)
}
