package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"github.com/peermint/peermint/pkg/config"
	"github.com/peermint/peermint/pkg/logger"
)

// ServiceName identifies this service in exported telemetry.
const ServiceName = "peermint"

// Observability encapsulates the metrics instruments of the node.
type Observability struct {
	Logger logger.Logger
	Meter  metric.Meter

	meterProvider *sdkmetric.MeterProvider

	transactionsAccepted metric.Int64Counter
	blocksMined          metric.Int64Counter
	mineDuration         metric.Float64Histogram
}

// New initializes the observability components based on the provided
// configuration. When metrics are disabled the instruments are created from
// the default no-op meter, so callers never need to branch.
func New(ctx context.Context, cfg config.Observability, log logger.Logger) (*Observability, error) {
	obs := &Observability{Logger: log}

	if cfg.Metrics.Enable {
		meter, provider, err := initMetrics(ctx, cfg.Metrics, log)
		if err != nil {
			log.Error("Failed to initialize metrics", zap.Error(err))
			return nil, err
		}
		obs.Meter = meter
		obs.meterProvider = provider
	} else {
		obs.Meter = otel.Meter("disabled")
	}

	if err := obs.initInstruments(); err != nil {
		log.Error("Failed to initialize metrics instruments", zap.Error(err))
		return nil, err
	}

	return obs, nil
}

// initInstruments creates the instruments recorded by the node.
func (o *Observability) initInstruments() error {
	var err error

	o.transactionsAccepted, err = o.Meter.Int64Counter("peermint_transactions_accepted",
		metric.WithDescription("Counts transactions accepted into the pending pool"),
	)
	if err != nil {
		return err
	}

	o.blocksMined, err = o.Meter.Int64Counter("peermint_blocks_mined",
		metric.WithDescription("Counts blocks appended to the chain"),
	)
	if err != nil {
		return err
	}

	o.mineDuration, err = o.Meter.Float64Histogram("peermint_mine_duration_seconds",
		metric.WithDescription("Wall-clock duration of proof-of-work searches"),
		metric.WithUnit("s"),
	)
	return err
}

// RecordTransactionAccepted records one accepted transaction.
// Safe on a nil receiver so callers without observability can pass nil.
func (o *Observability) RecordTransactionAccepted(ctx context.Context) {
	if o == nil {
		return
	}
	o.transactionsAccepted.Add(ctx, 1)
}

// RecordBlockMined records a freshly appended block and the duration of the
// proof search that produced it.
func (o *Observability) RecordBlockMined(ctx context.Context, seconds float64) {
	if o == nil {
		return
	}
	o.blocksMined.Add(ctx, 1)
	o.mineDuration.Record(ctx, seconds)
}

// Shutdown gracefully shuts down the metric provider, flushing pending
// exports.
func (o *Observability) Shutdown(ctx context.Context) error {
	if o == nil || o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
