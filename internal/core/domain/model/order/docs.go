// Package order contains the Order aggregate: the lifecycle state machine
// (pending -> accepted -> out_for_delivery -> delivered, with cancellation
// before dispatch) and the dual delivery confirmations that both transaction
// parties record independently.
package order
