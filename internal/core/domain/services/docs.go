// Package services contains domain services: operations that evaluate
// domain state but do not belong to a single aggregate. The demand
// aggregator lives here because it works over the whole demand snapshot
// rather than any one demand.
package services
