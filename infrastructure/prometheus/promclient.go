package promclient

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var OpenOrderBooksGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "localbook_open_order_books",
		Help: "number of markets with an active local order book",
	},
)

var ResyncsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "localbook_resyncs_total",
		Help: "sequence gaps that forced a book re-synchronization",
	},
)

var DesyncsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "localbook_desyncs_total",
		Help: "markets lost after exhausting the snapshot retry budget",
	},
)

var StaleDeltasTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "localbook_stale_deltas_total",
		Help: "deltas dropped for a non-increasing nonce",
	},
)

var MalformedLevelsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "localbook_malformed_levels_total",
		Help: "price levels skipped because they failed to parse",
	},
)

func StartPromClientServer(addr string) {
	reg := prometheus.NewRegistry()
	promHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	reg.MustRegister(OpenOrderBooksGauge)
	reg.MustRegister(ResyncsTotal)
	reg.MustRegister(DesyncsTotal)
	reg.MustRegister(StaleDeltasTotal)
	reg.MustRegister(MalformedLevelsTotal)
	reg.MustRegister(collectors.NewGoCollector())

	http.Handle("/metrics", promHandler)
	log.Printf("prometheus server listening at %s", addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
