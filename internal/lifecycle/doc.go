// Package lifecycle drives the scoped activation of constructed components.
//
// Activate opens every instance in dependency order, hands the opened values
// to a caller-supplied block, and closes every opened instance in strict
// reverse order when the block exits, whatever the reason: normal return,
// error, panic or context cancellation. If an open fails partway through,
// the components opened so far are closed in reverse and the open error is
// returned; later components are never opened.
//
// Each component moves through Unopened, Opened and Closed exactly once.
// Plain instances count as opened and close as a no-op. A failing Close
// never prevents the remaining closes; failures are logged and aggregated.
package lifecycle
