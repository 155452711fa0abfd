// Package engine is the concrete engine layer on top of kumiki: the engine
// Event type, configuration, logging and telemetry, the fixed-timestep
// Orchestrator, and the debug systems (console, shell, script commands,
// event monitor, resource watcher).
//
// Every system receives a *kumiki.Resources as its auxiliary context. The
// Orchestrator stores the active Config, the zerolog.Logger and the Stats
// client there.
package engine
