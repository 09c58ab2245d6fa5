// Package logging provides a simple leveled logging interface for the
// audioworks scanning engine.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable.
// An optional Sink can be attached with SetSink to receive every emitted
// entry as a structured {level, message} record; scan runs attach one to
// collect warnings and errors into the scan report.
package logging
