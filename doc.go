// Package den2ne implements a decentralized power-routing and load
// balancing engine for radial/meshed electrical distribution networks.
//
// A distribution graph is built once per timestep from a load table and
// an edge list (core), then flooded with hierarchical path addresses
// from its root substation (propagate). Every node scores its candidate
// addresses under one of six routing criteria and activates the
// minimum-scoring one (selector), optionally passing the result through
// a flow-inertia reconciliation pass that favors the address an
// upstream neighbor already committed to (inertia). A balance pass then
// drains active addresses longest-first, transferring load toward the
// root under an optional loss model and link-ampacity cap (balance).
// driver repeats select→balance until no node still encloses load or an
// iteration cap is hit, and fans a batch of independent (topology, root)
// jobs out across a worker pool. topology loads the CSV/YAML inputs this
// pipeline runs against and writes its CSV outputs back out.
//
//	core/      — Graph, Node, Link, HPA: the distribution network model
//	propagate/ — HPA flood from the root (§4.3)
//	selector/  — criterion scoring and active-address selection (§4.4)
//	inertia/   — optional flow-inertia reconciliation (§4.7)
//	balance/   — load transfer along active addresses (§4.5-4.6)
//	driver/    — iterate-to-quiescence loop and batch fan-out (§5)
//	topology/  — CSV/YAML ingestion and CSV result output (§6)
//	cmd/den2ne/ — CLI entrypoint
package den2ne
