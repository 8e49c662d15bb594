package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridmesh/den2ne/core"
)

func TestLink_NormalCapacity(t *testing.T) {
	conf := core.LinkConfig{CoefR: 0.3, IMax: 400}
	l := core.NewNormalLink("2", 100, 1, conf)

	cap, ok := l.Capacity()
	assert.True(t, ok)
	// capacity = i_max * 3 * V / 1000 = 400*3*415/1000 = 498
	assert.InDelta(t, 498.0, cap, 1e-9)
}

func TestLink_SwitchHasNoCapacity(t *testing.T) {
	l := core.NewSwitchLink("2", 0, core.StateClosed)
	_, ok := l.Capacity()
	assert.False(t, ok)
}

func TestLink_NormalLosses(t *testing.T) {
	conf := core.LinkConfig{CoefR: 0.3, IMax: 400}
	l := core.NewNormalLink("2", 100, 1, conf)

	rEff := 0.3 * (100.0 / core.FeetPerMeter / 1000.0)
	want := (rEff / (core.Voltage * core.Voltage)) * (10.0 * 10.0) * 1000.0
	got := l.GetLosses(10.0)
	assert.True(t, math.Abs(got-want) < 1e-12)
	assert.GreaterOrEqual(t, got, 0.0)
}

func TestLink_SwitchLosses(t *testing.T) {
	l := core.NewSwitchLink("2", 0, core.StateClosed)
	want := (core.SwitchResistance / (core.Voltage * core.Voltage)) * (5.0 * 5.0) * 1000.0
	got := l.GetLosses(5.0)
	assert.InDelta(t, want, got, 1e-12)
}
