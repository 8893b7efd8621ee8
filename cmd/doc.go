// Package cmd implements the command-line interface of the request/response
// protocol demo client. The root command parses the connection and request
// flags, performs one exchange and prints the decoded response.
//
// The package is organized into:
//
//   - root: the client command, configuration processing and execution
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See rsclient --help for all flags.
package cmd
