package telemetry

import (
	"github.com/armon/go-metrics"
)

const relayMetricsPrefix = "relay"

func UpdateDepositsObservedCounter(direction string, cnt int) {
	metrics.IncrCounter([]string{relayMetricsPrefix, "deposits_observed_counter", direction}, float32(cnt))
}

func UpdateBatchesRelayedCounter(direction string) {
	metrics.IncrCounter([]string{relayMetricsPrefix, "batches_relayed_counter", direction}, 1)
}

func UpdateBatchSubmitFailed(direction string) {
	metrics.IncrCounter([]string{relayMetricsPrefix, "batch_submit_failed", direction}, 1)
}

func UpdateRelayCheckpoint(direction string, block uint64) {
	metrics.SetGauge([]string{relayMetricsPrefix, "checkpoint_high", direction}, float32(block>>32))
	metrics.SetGauge([]string{relayMetricsPrefix, "checkpoint_low", direction}, float32(uint32(block))) //nolint:gosec
}
