// Package diagnostic collects structured findings from mapping validation
// and generation runs.
package diagnostic
