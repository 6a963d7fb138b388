package keeper

import (
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/priceoracle/x/priceoracle/types"
)

const (
	tradeStatusAccepted = "accepted"
	tradeStatusRejected = "rejected"
	tradeStatusDropped  = "dropped"
)

// OracleMetrics holds all Prometheus metrics for the price oracle module
type OracleMetrics struct {
	TrackedPairs prometheus.Gauge
	TradesTotal  *prometheus.CounterVec
	RollupsTotal *prometheus.CounterVec
	SpotPrice    *prometheus.GaugeVec
	SpotVolume   *prometheus.GaugeVec
	BlockWeight  prometheus.Gauge
}

var (
	oracleMetricsOnce sync.Once
	oracleMetrics     *OracleMetrics
)

// NewOracleMetrics creates and registers price oracle metrics (singleton pattern)
func NewOracleMetrics() *OracleMetrics {
	oracleMetricsOnce.Do(func() {
		oracleMetrics = &OracleMetrics{
			TrackedPairs: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: types.ModuleName,
					Name:      "tracked_pairs",
					Help:      "Number of asset pairs tracked by the price oracle",
				},
			),
			TradesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: types.ModuleName,
					Name:      "trades_total",
					Help:      "Trade observations by outcome (accepted, rejected, dropped)",
				},
				[]string{"status"},
			),
			RollupsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: types.ModuleName,
					Name:      "rollups_total",
					Help:      "Window rollups by destination tier",
				},
				[]string{"tier"},
			),
			SpotPrice: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: types.ModuleName,
					Name:      "spot_price",
					Help:      "Newest ten-block snapshot price per asset pair",
				},
				[]string{"pair"},
			),
			SpotVolume: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: types.ModuleName,
					Name:      "spot_volume",
					Help:      "Newest ten-block snapshot volume per asset pair",
				},
				[]string{"pair"},
			),
			BlockWeight: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "paw",
					Subsystem: types.ModuleName,
					Name:      "block_weight",
					Help:      "Weight reported by the last block rollup",
				},
			),
		}
	})
	return oracleMetrics
}

// recordSpotPrice exports a snapshot. Values are lossy floats, for dashboards only.
func (k Keeper) recordSpotPrice(pair types.AssetPair, info types.PriceInfo) {
	if info.AvgPrice.IsNil() || info.Volume.IsNil() {
		return
	}
	if price, err := info.AvgPrice.Float64(); err == nil {
		k.metrics.SpotPrice.WithLabelValues(pair.String()).Set(price)
	}
	volume, _ := sdkmath.LegacyNewDecFromInt(info.Volume).Float64()
	k.metrics.SpotVolume.WithLabelValues(pair.String()).Set(volume)
}
