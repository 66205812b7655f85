package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapMemoStoreRoundTrip(t *testing.T) {
	m := NewMemoStore()
	precision := Precision{3, 4}
	vs := []int{5, 1, 9}

	_, ok := m.Lookup(precision, vs)
	require.False(t, ok)

	strategy := []int{-1, 5, 1}
	m.Store(precision, vs, strategy)

	got, ok := m.Lookup(precision, vs)
	require.True(t, ok)
	require.Equal(t, strategy, got)
}

func TestMapMemoStoreDistinguishesPrecision(t *testing.T) {
	m := NewMemoStore()
	vs := []int{1, 2}
	m.Store(Precision{1, 1}, vs, []int{-1, -1})

	_, ok := m.Lookup(Precision{2, 1}, vs)
	require.False(t, ok)
}

func TestMapMemoStoreDoesNotSortVertexOrder(t *testing.T) {
	m := NewMemoStore()
	precision := Precision{1, 1}
	m.Store(precision, []int{1, 2}, []int{-1, 1})

	_, ok := m.Lookup(precision, []int{2, 1})
	require.False(t, ok, "vertex order is part of the key; a permutation must miss")
}

func TestHashedMemoStoreRoundTrip(t *testing.T) {
	m := NewHashedMemoStore()
	precision := Precision{2, 2}
	vs := []int{10, 20, 30}
	strategy := []int{20, -1, 20}

	m.Store(precision, vs, strategy)
	got, ok := m.Lookup(precision, vs)
	require.True(t, ok)
	require.Equal(t, strategy, got)
}

func TestHashedMemoStoreRejectsSameBucketDifferentVertices(t *testing.T) {
	m := NewHashedMemoStore()
	precision := Precision{1, 1}
	m.Store(precision, []int{1, 2}, []int{-1, 1})

	_, ok := m.Lookup(precision, []int{3, 4})
	require.False(t, ok)
}
