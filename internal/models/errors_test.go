package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesKind(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewError(KindParse, cause, "failed to parse GPX")

	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrEmptyTrack)
	assert.Equal(t, "failed to parse GPX: unexpected EOF", err.Error())

	wrapped := fmt.Errorf("upload 42: %w", err)
	assert.ErrorIs(t, wrapped, ErrParse)
	assert.Equal(t, KindParse, KindOf(wrapped))
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestCriterionMethods(t *testing.T) {
	assert.Equal(t, MethodDistance, DistanceRange{}.Method())
	assert.Equal(t, MethodTime, TimeRange{}.Method())
}
