/*
Package observability provides the Prometheus metrics of the curve editor.

Metrics live on a private registry and are dumped with WriteText. All Observe
methods are safe to call on a nil *Metrics, which records nothing.
*/
package observability
