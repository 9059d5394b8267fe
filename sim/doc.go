// Package sim provides the discrete-event simulation engine for a
// logistics transport network: a fleet of trucks fulfilling
// pickup-and-delivery orders over a graph of warehouses, hubs, ports,
// inspection points, and customer sites.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - graph.go: the transport topology (k-NN construction, shortest path)
//   - truck.go, order.go, node.go: the mutable domain state
//   - event.go: the tagged event variants that drive the simulation
//   - engine.go: the event loop and state-machine transitions
//   - dispatch.go: order-to-truck matching policies
//   - delay.go: stochastic travel and service time models
//
// # Architecture
//
// The engine owns a single priority queue of Events ordered by
// (time, insertion sequence), giving deterministic tie-breaking. Each
// event carries a typed payload and knows how to apply itself to an
// Engine via Execute. The Graph is built once at startup (from a
// synthetic random topology or a TSPLIB coordinate file) and treated as
// read-only for the rest of the run; all other state — trucks, orders,
// per-node service queues — lives on the Engine and is mutated only by
// event handlers.
//
// # Key Interfaces
//
// The primary extension point is DispatchPolicy, which selects which
// idle truck serves a newly pending order. PartitionedRNG derives
// independent, reproducible random streams per subsystem (travel delay,
// service delay, workload generation) from a single run seed.
package sim
