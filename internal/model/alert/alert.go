package alert

import (
	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/logger"
)

// approachingRatio is the share of the budget past which the total counts
// as approaching the limit.
const approachingRatio = 0.9

type Signal int

const (
	None Signal = iota
	Approaching
	Exceeded
)

func (s Signal) String() string {
	switch s {
	case Approaching:
		return "approaching"
	case Exceeded:
		return "exceeded"
	default:
		return "none"
	}
}

// Message is the user facing text for the signal.
func (s Signal) Message() string {
	switch s {
	case Approaching:
		return "Alert: You are approaching your budget limit!"
	case Exceeded:
		return "Warning: You have exceeded your budget!"
	default:
		return ""
	}
}

func Evaluate(total, budget float64) Signal {
	if total > budget {
		return Exceeded
	}
	if total > approachingRatio*budget {
		return Approaching
	}
	return None
}

//go:generate minimock -i Sink -o ./mock/sink_mock.go -n SinkMock

type Sink interface {
	Notify(signal Signal, total, budget float64)
}

// BudgetAlert watches ledger updates and forwards Approaching and Exceeded
// signals to its sink. It never touches the ledger.
type BudgetAlert struct {
	sink Sink
	last Signal
}

func New(sink Sink) *BudgetAlert {
	return &BudgetAlert{sink: sink}
}

func (a *BudgetAlert) OnUpdate(total, budget float64) {
	a.last = Evaluate(total, budget)
	if a.last == None {
		return
	}
	observeSignal(a.last)
	a.sink.Notify(a.last, total, budget)
}

// Last is the signal computed on the most recent update.
func (a *BudgetAlert) Last() Signal {
	return a.last
}

type LogSink struct{}

func (LogSink) Notify(signal Signal, total, budget float64) {
	logger.Warn(signal.Message(),
		zap.Stringer("signal", signal),
		zap.Float64("total", total),
		zap.Float64("budget", budget))
}
