// Package scanhead is the client runtime for a fleet of networked
// laser-line 3D scan heads.
//
// A host constructs a System, discovers heads on the local network, creates
// a Head per participating serial number, configures exposure, alignment
// and scan windows, authors a phase table describing how the heads
// time-slice their cameras and lasers within each scan period, and starts
// synchronized scanning. Each head then streams datagrams that the runtime
// reassembles into complete profiles (up to 1456 (x, y, brightness) points
// at a single head timestamp) and publishes into a bounded per-head buffer
// the host drains.
//
// Lost datagrams are not retransmitted: a profile assembled from fewer
// datagrams than the head sent is still published, visibly incomplete via
// its PacketsReceived and PacketsExpected counters.
package scanhead
