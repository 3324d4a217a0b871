package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Level    float64
	Method   string
	Enabled  bool
	LastCall string
}

func (s *testSettings) SetLevel(v float64) error {
	if v <= 0 || v >= 1 {
		return errors.New("level must be in (0, 1)")
	}
	s.Level = v
	s.LastCall = "SetLevel"

	return nil
}

func (s *testSettings) SetMethod(m string) {
	s.Method = m
	s.LastCall = "SetMethod"
}

func withLevel(v float64) Option[*testSettings] {
	return New(func(s *testSettings) error { return s.SetLevel(v) })
}

func withMethod(m string) Option[*testSettings] {
	return NoError(func(s *testSettings) { s.SetMethod(m) })
}

func TestOption_New(t *testing.T) {
	t.Run("applies valid value", func(t *testing.T) {
		s := &testSettings{}
		require.NoError(t, withLevel(0.9).apply(s))
		require.Equal(t, 0.9, s.Level)
		require.Equal(t, "SetLevel", s.LastCall)
	})

	t.Run("propagates validation error", func(t *testing.T) {
		s := &testSettings{}
		err := withLevel(1.5).apply(s)
		require.Error(t, err)
		require.Contains(t, err.Error(), "level must be in (0, 1)")
		require.Zero(t, s.Level)
	})
}

func TestOption_NoError(t *testing.T) {
	s := &testSettings{}
	require.NoError(t, withMethod("tukey").apply(s))
	require.Equal(t, "tukey", s.Method)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		s := &testSettings{}
		err := Apply(s, withLevel(0.5), withMethod("scott"), NoError(func(s *testSettings) { s.Enabled = true }))
		require.NoError(t, err)
		require.Equal(t, 0.5, s.Level)
		require.Equal(t, "scott", s.Method)
		require.True(t, s.Enabled)
		require.Equal(t, "SetMethod", s.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		s := &testSettings{}
		err := Apply(s, withLevel(0.25), withLevel(-1), withMethod("never"))
		require.Error(t, err)
		require.Equal(t, 0.25, s.Level)
		require.Empty(t, s.Method)
	})

	t.Run("empty options leave target unchanged", func(t *testing.T) {
		s := &testSettings{Method: "sturges"}
		require.NoError(t, Apply(s))
		require.Equal(t, "sturges", s.Method)
	})
}

func TestBuild(t *testing.T) {
	base := testSettings{Level: 0.95, Method: "tukey"}

	t.Run("keeps defaults for untouched fields", func(t *testing.T) {
		got, err := Build(base, withMethod("minmax"))
		require.NoError(t, err)
		require.Equal(t, 0.95, got.Level)
		require.Equal(t, "minmax", got.Method)
	})

	t.Run("does not modify base", func(t *testing.T) {
		_, err := Build(base, withLevel(0.5))
		require.NoError(t, err)
		require.Equal(t, 0.95, base.Level)
	})

	t.Run("returns zero value on error", func(t *testing.T) {
		got, err := Build(base, withLevel(2))
		require.Error(t, err)
		require.Equal(t, testSettings{}, got)
	})
}
