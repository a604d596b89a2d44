package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionSet_PreservesInsertionOrder(t *testing.T) {
	s := NewConditionSet("Rain", "Clouds")
	s.Add("Thunderstorm", "Rain", "Clear")

	assert.Equal(t, []string{"Rain", "Clouds", "Thunderstorm", "Clear"}, s.Labels())
	assert.Equal(t, "Rain, Clouds, Thunderstorm, Clear", s.Join(", "))
	assert.Equal(t, 4, s.Len())
}

func TestConditionSet_Has(t *testing.T) {
	s := NewConditionSet("Thunderstorm")

	assert.True(t, s.Has("Thunderstorm"))
	assert.False(t, s.Has("Rain"))
}

func TestConditionSet_IgnoresEmptyLabels(t *testing.T) {
	s := NewConditionSet("", "Clear", "")

	assert.Equal(t, []string{"Clear"}, s.Labels())
}

func TestConditionSet_LabelsReturnsCopy(t *testing.T) {
	s := NewConditionSet("Rain", "Clear")

	labels := s.Labels()
	labels[0] = "mutated"

	assert.Equal(t, []string{"Rain", "Clear"}, s.Labels())
}
