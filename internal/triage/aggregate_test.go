package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/triage/internal/testparser"
)

func outcome(kind testparser.Kind, class, method, message string) testparser.Outcome {
	return testparser.Outcome{Kind: kind, Class: class, Method: method, Message: message}
}

func TestAggregator_GetOrCreate(t *testing.T) {
	t.Parallel()
	agg := NewAggregator()

	first, created := agg.getOrCreate(`Tests\FooTest`)
	require.True(t, created)
	require.NotNil(t, first)

	second, created := agg.getOrCreate(`Tests\FooTest`)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, 1, agg.Len())
}

func TestAggregator_DistinctClasses(t *testing.T) {
	t.Parallel()
	agg := NewAggregator()
	agg.AddAll([]testparser.Outcome{
		outcome(testparser.KindError, `Tests\A`, "testA", "a"),
		outcome(testparser.KindError, `Tests\B`, "testB", "b"),
		outcome(testparser.KindFailure, `Tests\C`, "testC", "c"),
	})

	a := agg.Analysis()

	require.Equal(t, 3, a.Len())
	for _, s := range a.Sorted() {
		assert.Equal(t, 1, s.TotalCount(), s.Name)
	}
}

func TestAggregator_SameClassErrorAndFailure(t *testing.T) {
	t.Parallel()
	agg := NewAggregator()
	agg.Add(outcome(testparser.KindError, `Tests\FooTest`, "testA", "boom"))
	agg.Add(outcome(testparser.KindFailure, `Tests\FooTest`, "testB", "nope"))

	a := agg.Analysis()

	require.Equal(t, 1, a.Len())
	s, ok := a.Class(`Tests\FooTest`)
	require.True(t, ok)
	assert.Equal(t, 1, s.ErrorCount())
	assert.Equal(t, 1, s.FailureCount())
	assert.Equal(t, 2, s.TotalCount())
	assert.Equal(t, "testA", s.Errors()[0].Method)
	assert.Equal(t, "testB", s.Failures()[0].Method)
}

func TestAggregator_OrderIndependent(t *testing.T) {
	t.Parallel()
	records := []testparser.Outcome{
		outcome(testparser.KindError, `Tests\A`, "t1", "x"),
		outcome(testparser.KindFailure, `Tests\A`, "t2", "y"),
		outcome(testparser.KindFailure, `Tests\B`, "t3", "y"),
		outcome(testparser.KindError, `Tests\B`, "t4", "z"),
	}

	forward := NewAggregator()
	forward.AddAll(records)

	backward := NewAggregator()
	for i := len(records) - 1; i >= 0; i-- {
		backward.Add(records[i])
	}

	fa, ba := forward.Analysis(), backward.Analysis()
	require.Equal(t, fa.Len(), ba.Len())
	for _, s := range fa.Sorted() {
		other, ok := ba.Class(s.Name)
		require.True(t, ok)
		assert.Equal(t, s.ErrorCount(), other.ErrorCount())
		assert.Equal(t, s.FailureCount(), other.FailureCount())
	}
}

func TestAggregator_IgnoresUnknownKind(t *testing.T) {
	t.Parallel()
	agg := NewAggregator()
	agg.Add(outcome(testparser.Kind(7), `Tests\A`, "t", "m"))

	assert.Equal(t, 0, agg.Len())
	assert.Equal(t, 0, agg.Records())
}

func TestAggregator_AnalysisIsSnapshot(t *testing.T) {
	t.Parallel()
	agg := NewAggregator()
	agg.Add(outcome(testparser.KindError, `Tests\A`, "t1", "x"))

	a := agg.Analysis()
	agg.Add(outcome(testparser.KindError, `Tests\A`, "t2", "x"))

	s, _ := a.Class(`Tests\A`)
	assert.Equal(t, 1, s.TotalCount())
	assert.Equal(t, 2, agg.Records())
}

func TestClassSummary_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	s := newClassSummary(`Tests\A`)
	s.add(outcome(testparser.KindError, `Tests\A`, "t", "x"))

	errs := s.Errors()
	errs[0].Message = "mutated"

	assert.Equal(t, "x", s.Errors()[0].Message)
}

func TestClassSummary_ShortName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want string
	}{
		{`Tests\Unit\UserTest`, "UserTest"},
		{`Tests\FooTest`, "FooTest"},
		{"Plain", "Plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, (&ClassSummary{Name: tt.name}).ShortName())
	}
}
