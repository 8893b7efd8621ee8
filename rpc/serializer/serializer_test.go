package serializer

import (
	"bytes"
	"errors"
	"github.com/unStatiK/RSocket-sandbox/rpc/common"
	"reflect"
	"testing"
)

// testMessages creates a set of test messages with different fields filled
func testMessages() []common.Message {
	return []common.Message{
		// Status messages
		*common.NewStatusMessage(42),
		*common.NewStatusMessage(200),
		*common.NewStatusMessage(-1),

		// Container with packets
		*common.NewContainerMessage("batch",
			common.Packet{ID: 1, Name: "a"},
			common.Packet{ID: 2, Name: "b"},
		),

		// Container with the packets the reference server sends
		*common.NewContainerMessage("r-tag",
			common.Packet{ID: 999, Name: "p999"},
			common.Packet{ID: 1000, Name: "p1000"},
		),

		// Container with a single packet and unicode name
		*common.NewContainerMessage("ünïcode",
			common.Packet{ID: -7, Name: "пакет"},
		),
	}
}

// TestSerializerRoundTrip tests that messages can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	serializer := NewProtobufSerializer()

	for i, msg := range testMessages() {
		data, err := serializer.Serialize(msg)
		if err != nil {
			t.Errorf("Failed to serialize message %d: %v", i, err)
			continue
		}

		var result common.Message
		if err := serializer.Deserialize(msg.MsgType, data, &result); err != nil {
			t.Errorf("Failed to deserialize message %d: %v", i, err)
			continue
		}

		if !reflect.DeepEqual(msg, result) {
			t.Errorf("Message %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v", i, msg, result)
		}
	}
}

// TestSerializerGolden checks the exact bytes, they must match what protoc generated code produces
func TestSerializerGolden(t *testing.T) {
	serializer := NewProtobufSerializer()

	testCases := []struct {
		name string
		msg  common.Message
		want []byte
	}{
		{
			name: "Status 42",
			msg:  *common.NewStatusMessage(42),
			want: []byte{0x08, 0x2a},
		},
		{
			name: "Status zero is omitted",
			msg:  *common.NewStatusMessage(0),
			want: nil,
		},
		{
			name: "Negative status is sign extended",
			msg:  *common.NewStatusMessage(-1),
			want: []byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		},
		{
			name: "Container",
			msg: *common.NewContainerMessage("batch",
				common.Packet{ID: 1, Name: "a"},
				common.Packet{ID: 2, Name: "b"},
			),
			want: []byte{
				0x0a, 0x05, 'b', 'a', 't', 'c', 'h',
				0x12, 0x05, 0x08, 0x01, 0x12, 0x01, 'a',
				0x12, 0x05, 0x08, 0x02, 0x12, 0x01, 'b',
			},
		},
		{
			name: "Container with empty packet",
			msg:  *common.NewContainerMessage("", common.Packet{}),
			want: []byte{0x12, 0x00},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := serializer.Serialize(tc.msg)
			if err != nil {
				t.Fatalf("Failed to serialize: %v", err)
			}
			if !bytes.Equal(data, tc.want) {
				t.Errorf("Encoding mismatch: expected % x, got % x", tc.want, data)
			}
		})
	}
}

// TestEnvelope tests the version 1 wrapper
func TestEnvelope(t *testing.T) {
	serializer := NewProtobufSerializer()

	env := common.Envelope{MsgType: common.MsgTStatus, Data: []byte{0x08, 0x2a}}
	data, err := serializer.SerializeEnvelope(env)
	if err != nil {
		t.Fatalf("Failed to serialize envelope: %v", err)
	}
	want := []byte{0x08, 0x01, 0x12, 0x02, 0x08, 0x2a}
	if !bytes.Equal(data, want) {
		t.Errorf("Encoding mismatch: expected % x, got % x", want, data)
	}

	var result common.Envelope
	if err := serializer.DeserializeEnvelope(data, &result); err != nil {
		t.Fatalf("Failed to deserialize envelope: %v", err)
	}
	if !reflect.DeepEqual(env, result) {
		t.Errorf("Envelope doesn't match after round trip:\nOriginal: %+v\nResult: %+v", env, result)
	}

	// A request envelope only carries the type
	data, err = serializer.SerializeEnvelope(common.Envelope{MsgType: common.MsgTContainer})
	if err != nil {
		t.Fatalf("Failed to serialize envelope: %v", err)
	}
	if !bytes.Equal(data, []byte{0x08, 0x02}) {
		t.Errorf("Encoding mismatch: expected 08 02, got % x", data)
	}
}

// TestDeserializeUnknownFields tests that fields outside the schema are skipped
func TestDeserializeUnknownFields(t *testing.T) {
	serializer := NewProtobufSerializer()

	data := []byte{
		0x18, 0x05, // field 3 varint (unknown)
		0x08, 0x2a, // status = 42
		0x22, 0x02, 'x', 'y', // field 4 bytes (unknown)
	}

	var msg common.Message
	if err := serializer.Deserialize(common.MsgTStatus, data, &msg); err != nil {
		t.Fatalf("Failed to deserialize: %v", err)
	}
	if msg.Status == nil || msg.Status.Code != 42 {
		t.Errorf("Expected status 42, got %+v", msg.Status)
	}
}

// TestDeserializeUnknownType tests that a body of an unknown type is ignored
func TestDeserializeUnknownType(t *testing.T) {
	serializer := NewProtobufSerializer()

	var msg common.Message
	if err := serializer.Deserialize(common.MessageType(7), []byte{0xff, 0xff}, &msg); err != nil {
		t.Fatalf("Did not expect error but got: %v", err)
	}
	if msg.MsgType != 7 || msg.Status != nil || msg.Container != nil {
		t.Errorf("Expected a message without body, got %+v", msg)
	}

	if _, err := serializer.Serialize(common.Message{MsgType: common.MsgTUnknown}); err == nil {
		t.Errorf("Expected error when serializing unknown message type")
	}
}

// TestInvalidData tests how the serializer handles corrupt or invalid data
func TestInvalidData(t *testing.T) {
	serializer := NewProtobufSerializer()

	testCases := []struct {
		name        string
		msgType     common.MessageType
		data        []byte
		expectError bool
	}{
		{
			name:        "Empty status",
			msgType:     common.MsgTStatus,
			data:        []byte{},
			expectError: false,
		},
		{
			name:        "Truncated varint",
			msgType:     common.MsgTStatus,
			data:        []byte{0x08, 0x80},
			expectError: true,
		},
		{
			name:        "Wrong wire type for status",
			msgType:     common.MsgTStatus,
			data:        []byte{0x0a, 0x01, 'x'},
			expectError: true,
		},
		{
			name:        "Invalid length for tag",
			msgType:     common.MsgTContainer,
			data:        []byte{0x0a, 0x05, 'a', 'b'},
			expectError: true,
		},
		{
			name:        "Malformed packet",
			msgType:     common.MsgTContainer,
			data:        []byte{0x12, 0x02, 0x08, 0x80},
			expectError: true,
		},
		{
			name:        "Field number zero",
			msgType:     common.MsgTContainer,
			data:        []byte{0x00, 0x01},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var msg common.Message
			err := serializer.Deserialize(tc.msgType, tc.data, &msg)

			if tc.expectError && err == nil {
				t.Errorf("Expected error but got none")
			} else if !tc.expectError && err != nil {
				t.Errorf("Did not expect error but got: %v", err)
			}
			if err != nil && !errors.Is(err, common.ErrMalformedBody) {
				t.Errorf("Expected ErrMalformedBody, got: %v", err)
			}
		})
	}

	var env common.Envelope
	if err := serializer.DeserializeEnvelope([]byte{0x12, 0x09, 0x01}, &env); !errors.Is(err, common.ErrMalformedBody) {
		t.Errorf("Expected ErrMalformedBody for truncated envelope, got: %v", err)
	}
}
