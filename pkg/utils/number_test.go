package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 0.33, RoundWithTwoDecimalPlace(10.0/30.0))
	assert.Equal(t, 0.67, RoundWithTwoDecimalPlace(20.0/30.0))
	assert.Equal(t, 1.0, RoundWithTwoDecimalPlace(1))
}
