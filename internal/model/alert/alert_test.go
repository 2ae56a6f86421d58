package alert_test

import (
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"max.ks1230/budget-ledger/internal/logger"
	"max.ks1230/budget-ledger/internal/model/alert"
	"max.ks1230/budget-ledger/internal/model/alert/mock"
)

func Test_OnEvaluate_ShouldClassifyAgainstBudget(t *testing.T) {
	cases := []struct {
		total, budget float64
		want          alert.Signal
	}{
		{0, 100, alert.None},
		{90, 100, alert.None},
		{90.01, 100, alert.Approaching},
		{95, 100, alert.Approaching},
		{100, 100, alert.Approaching},
		{100.01, 100, alert.Exceeded},
		{120, 100, alert.Exceeded},
		{1, 0, alert.Exceeded},
		{0, 0, alert.None},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, alert.Evaluate(c.total, c.budget), "total=%v budget=%v", c.total, c.budget)
	}
}

func Test_OnApproachingTotal_ShouldNotifyApproaching(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sink := mock.NewSinkMock(m)
	sink.NotifyMock.Expect(alert.Approaching, 95, 100).Return()
	a := alert.New(sink)

	a.OnUpdate(5, 100)
	a.OnUpdate(95, 100)

	assert.Equal(t, uint64(1), sink.NotifyAfterCounter())
	assert.Equal(t, alert.Approaching, a.Last())
}

func Test_OnExceededTotal_ShouldNotifyExceeded(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sink := mock.NewSinkMock(m)
	sink.NotifyMock.Expect(alert.Exceeded, 120, 100).Return()
	a := alert.New(sink)

	a.OnUpdate(120, 100)

	assert.Equal(t, "Warning: You have exceeded your budget!", a.Last().Message())
}

func Test_OnTotalDroppingBelowThreshold_ShouldResetLast(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sink := mock.NewSinkMock(m)
	sink.NotifyMock.Expect(alert.Exceeded, 120, 100).Return()
	a := alert.New(sink)

	a.OnUpdate(120, 100)
	a.OnUpdate(10, 100)

	assert.Equal(t, uint64(1), sink.NotifyAfterCounter())
	assert.Equal(t, alert.None, a.Last())
	assert.Equal(t, "", a.Last().Message())
}

func Test_OnLogSink_ShouldWarnWithSignalFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()
	a := alert.New(alert.LogSink{})

	a.OnUpdate(50, 100)
	a.OnUpdate(95, 100)
	a.OnUpdate(120, 100)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Alert: You are approaching your budget limit!", entries[0].Message)
	assert.Equal(t, map[string]interface{}{
		"signal": "approaching",
		"total":  95.0,
		"budget": 100.0,
	}, entries[0].ContextMap())

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Warning: You have exceeded your budget!", entries[1].Message)
	assert.Equal(t, map[string]interface{}{
		"signal": "exceeded",
		"total":  120.0,
		"budget": 100.0,
	}, entries[1].ContextMap())
}
