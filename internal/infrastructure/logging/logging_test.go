package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New("debug", true)
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	_, ok := l.Formatter.(*logrus.JSONFormatter)
	require.True(t, ok)

	l = New("nope", false)
	require.Equal(t, logrus.InfoLevel, l.GetLevel())
	_, ok = l.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
}
