// Package web serves movie searches over HTTP: an HTML search page, a JSON
// API, Prometheus metrics and a health check.
package web
