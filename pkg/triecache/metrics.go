// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package triecache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeHitsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "triecache",
		Subsystem: "nodes",
		Name:      "hits_total",
		Help:      "total number of shared node cache hits",
	})
	nodeMissesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "triecache",
		Subsystem: "nodes",
		Name:      "misses_total",
		Help:      "total number of shared node cache misses",
	})
	nodeEvictionsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "triecache",
		Subsystem: "nodes",
		Name:      "evictions_total",
		Help:      "total number of nodes evicted from the shared node cache",
	})
	nodeSizeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "triecache",
		Subsystem: "nodes",
		Name:      "size_bytes",
		Help:      "current tracked size in bytes of the shared node cache",
	})
	valueHitsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "triecache",
		Subsystem: "values",
		Name:      "hits_total",
		Help:      "total number of shared value cache hits",
	})
	valueMissesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "triecache",
		Subsystem: "values",
		Name:      "misses_total",
		Help:      "total number of shared value cache misses",
	})
	valueEvictionsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "triecache",
		Subsystem: "values",
		Name:      "evictions_total",
		Help:      "total number of values evicted from the shared value cache",
	})
	valueSizeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "triecache",
		Subsystem: "values",
		Name:      "size_bytes",
		Help:      "current tracked size in bytes of the shared value cache",
	})
	commitsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "triecache",
		Name:      "commits_total",
		Help:      "total number of local cache commits merged into the shared caches",
	})
)
