// Package kernel contains shared value objects used across domain aggregates:
// UUID identifiers and WGS-84 geo points. These types are immutable, validate
// themselves on construction, and have invalid zero values by design.
package kernel
