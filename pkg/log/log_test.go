package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, env string) (Logger, *test.Hook) {
	t.Helper()
	SetEnvironment(env)
	t.Cleanup(func() { SetEnvironment("development") })

	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	return &logger{entry: logrus.NewEntry(base)}, hook
}

func TestLogger_DevelopmentFiltersFields(t *testing.T) {
	l, hook := newTestLogger(t, "development")

	l.WithFields(Fields{"client_id": 4, "user_agent": "curl", "user_id": 1}).
		WithField("remote_addr", "10.0.0.1").
		Info("ok")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 4, entry.Data["client_id"])
	assert.Equal(t, 1, entry.Data["user_id"])
	assert.NotContains(t, entry.Data, "user_agent")
	assert.NotContains(t, entry.Data, "remote_addr")
}

func TestLogger_ProductionKeepsAllFields(t *testing.T) {
	l, hook := newTestLogger(t, "production")

	l.WithFields(Fields{"user_agent": "curl"}).WithField("remote_addr", "10.0.0.1").Warn("lento")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "curl", entry.Data["user_agent"])
	assert.Equal(t, "10.0.0.1", entry.Data["remote_addr"])
}

func TestLogger_CorrelationID(t *testing.T) {
	l, hook := newTestLogger(t, "development")

	ctx, id := WithCorrelationID(context.Background())
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	l.WithContext(ctx).Error("falha")

	assert.Equal(t, id, hook.LastEntry().Data[correlationIDField])
}
