// Package metrics provides Prometheus collectors for ingestion and rolling
// retention.
//
// Collectors are created unregistered; callers decide which registry they
// belong to:
//
//	m := metrics.NewIngestMetrics("coinc")
//	if err := m.Register(prometheus.DefaultRegisterer); err != nil {
//		return err
//	}
//	res, err := ingest.ReadFile(path, ingest.WithMetrics(m))
//
// Every method is safe on a nil receiver, so components report
// unconditionally and an unset collector costs a nil check.
package metrics
