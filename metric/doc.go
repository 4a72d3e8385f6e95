// Package metric exposes dispatcher statistics through the Prometheus
// client library.  All instrumentation is kept in a separate package so
// that applications which do not scrape metrics can exclude it from
// their build.
package metric
