// SPDX-License-Identifier: MIT

package indexing

import (
	"bytes"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// metrics are kept on a private registry rather than the global default
// one: this program never starts an HTTP server, so there is nothing to
// scrape them. They exist purely to give a build a structured summary in
// the log, the way a build pipeline logs progress counters, while still
// reusing the ecosystem's metrics library rather than hand-rolling
// counters.
type metrics struct {
	registry      *prometheus.Registry
	blocksIndexed prometheus.Counter
	pagesIndexed  prometheus.Counter
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	m := &metrics{
		registry: registry,
		blocksIndexed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wikidump_indexing_blocks_indexed_total",
			Help: "Number of archive blocks successfully indexed.",
		}),
		pagesIndexed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wikidump_indexing_pages_indexed_total",
			Help: "Number of page headers extracted across all blocks.",
		}),
	}
	registry.MustRegister(m.blocksIndexed, m.pagesIndexed)
	return m
}

// flush writes the collected metric families to logger as text, once,
// at the end of a build.
func (m *metrics) flush(logger *log.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		logger.Printf("indexing: gather metrics: %v", err)
		return
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			logger.Printf("indexing: encode metric: %v", err)
			return
		}
	}
	logger.Printf("build metrics:\n%s", buf.String())
}
