// Package client implements the RPC client of the request/response protocol.
// It ties together the protocol versions, the transport and the body serializer.
//
// The package focuses on:
//   - A single, scoped request/response exchange per call
//   - Releasing the connection on every exit path
//   - Bounding the exchange with the configured timeout
//   - Recording exchange metrics (github.com/VictoriaMetrics/metrics)
//
// Key Components:
//
//   - NewRPCClient: Factory function that validates the configuration and resolves
//     the protocol version.
//
//   - RPCClient.Exchange: Connects, sends the request, decodes the response type,
//     dispatches the body and closes the connection.
//
// Usage Example:
//
//	config := common.ClientConfig{
//	  Host:          "localhost",
//	  Port:          6565,
//	  Version:       3,
//	  MsgType:       common.MsgTContainer,
//	  TimeoutSecond: 10,
//	  LogLevel:      "warn",
//	}
//
//	c, _ := client.NewRPCClient(config, tcp.NewTCPClientTransport(), serializer.NewProtobufSerializer())
//	msg, err := c.Exchange(context.Background())
package client
