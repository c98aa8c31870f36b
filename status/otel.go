package status

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/space-cannon/status"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Instrument exports the registry through the global OTel meter (no-op if not configured)
func Instrument(reg *Registry) (metric.Registration, error) {
	return InstrumentWith(meter(), reg)
}

// InstrumentWith exports every registry value as an observable gauge on m
// Ints and Floats are exported with their key as the "metric" attribute, Bools as 0/1
func InstrumentWith(m metric.Meter, reg *Registry) (metric.Registration, error) {
	ints, err := m.Int64ObservableGauge(
		"spacecannon.status.int",
		metric.WithDescription("Integer session metrics"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating int gauge: %w", err)
	}

	floats, err := m.Float64ObservableGauge(
		"spacecannon.status.float",
		metric.WithDescription("Real-valued session metrics"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating float gauge: %w", err)
	}

	bools, err := m.Int64ObservableGauge(
		"spacecannon.status.flag",
		metric.WithDescription("Session flags, 1 when set"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating flag gauge: %w", err)
	}

	registration, err := m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			reg.Ints.Range(func(key string, v *atomic.Int64) {
				o.ObserveInt64(ints, v.Load(), metric.WithAttributes(attribute.String("metric", key)))
			})
			reg.Floats.Range(func(key string, v *AtomicFloat) {
				o.ObserveFloat64(floats, v.Get(), metric.WithAttributes(attribute.String("metric", key)))
			})
			reg.Bools.Range(func(key string, v *atomic.Bool) {
				var n int64
				if v.Load() {
					n = 1
				}
				o.ObserveInt64(bools, n, metric.WithAttributes(attribute.String("metric", key)))
			})
			return nil
		},
		ints, floats, bools,
	)
	if err != nil {
		return nil, fmt.Errorf("registering status callback: %w", err)
	}
	return registration, nil
}
