package cmd

import (
	"fmt"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"io"
)

const packetSeparator = "######################################################"

// printMessage writes the decoded response in the human readable output format
func printMessage(w io.Writer, msg *common.Message) {
	fmt.Fprintf(w, "Get response type: %d\n", msg.MsgType)

	switch {
	case msg.Status != nil:
		fmt.Fprintf(w, "Get response status: %d\n", msg.Status.Code)
	case msg.Container != nil:
		fmt.Fprintf(w, "Get response tag: %s\n", msg.Container.Tag)
		fmt.Fprintf(w, "Response contains %d packets\n", len(msg.Container.Packets))
		for _, packet := range msg.Container.Packets {
			fmt.Fprintln(w, packetSeparator)
			fmt.Fprintf(w, "packet id: %d\n", packet.ID)
			fmt.Fprintf(w, "packet name: %s\n", packet.Name)
		}
	}
}
