package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh/den2ne/core"
)

func TestHPA_OwnerRootNextHop(t *testing.T) {
	h := &core.HPA{Path: []string{"1", "2", "3"}, DependsOn: map[int]struct{}{}}
	assert.Equal(t, "3", h.Owner())
	assert.Equal(t, "1", h.Root())
	nh, ok := h.NextHop()
	assert.True(t, ok)
	assert.Equal(t, "2", nh)
}

func TestHPA_NextHop_RootOnly(t *testing.T) {
	h := &core.HPA{Path: []string{"1"}, DependsOn: map[int]struct{}{}}
	_, ok := h.NextHop()
	assert.False(t, ok)
}

func TestHPA_Contains(t *testing.T) {
	h := &core.HPA{Path: []string{"1", "2", "3"}}
	assert.True(t, h.Contains("2"))
	assert.False(t, h.Contains("9"))
}

func TestHPA_DependsOnSorted(t *testing.T) {
	h := &core.HPA{Path: []string{"1"}, DependsOn: map[int]struct{}{3: {}, 1: {}, 2: {}}}
	assert.Equal(t, []int{1, 2, 3}, h.DependsOnSorted())
}
