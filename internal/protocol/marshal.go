package protocol

import (
	"errors"
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

var (
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrMissingType        = errors.New("message has no type")
)

// Message is any frame that can cross the wire.
type Message interface {
	msgp.Marshaler
	msgp.Unmarshaler
	msgp.Sizer
}

// Marshal serializes a message to msgpack format
func Marshal(m Message) ([]byte, error) {
	return m.MarshalMsg(nil)
}

// PeekType returns the "type" of a frame without decoding the rest.
func PeekType(data []byte) (string, error) {
	n, bts, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return "", msgp.WrapError(err)
	}
	for ; n > 0; n-- {
		var field []byte
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return "", msgp.WrapError(err)
		}
		if msgp.UnsafeString(field) == "type" {
			typ, _, err := msgp.ReadStringBytes(bts)
			if err != nil {
				return "", msgp.WrapError(err, "type")
			}
			return typ, nil
		}
		if bts, err = msgp.Skip(bts); err != nil {
			return "", msgp.WrapError(err)
		}
	}
	return "", ErrMissingType
}

// DecodeRequest decodes a frame sent by a client.
func DecodeRequest(data []byte) (Message, error) {
	typ, err := PeekType(data)
	if err != nil {
		return nil, err
	}

	var m Message
	switch typ {
	case TypeInit:
		m = &Init{}
	case TypeTurn:
		m = &Turn{}
	case TypeGiveUp:
		m = &GiveUp{}
	case TypeRestart:
		m = &Restart{}
	case TypeStateQuery:
		m = &StateQuery{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, typ)
	}
	if _, err := m.UnmarshalMsg(data); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeReply decodes a frame sent by a host.
func DecodeReply(data []byte) (Message, error) {
	typ, err := PeekType(data)
	if err != nil {
		return nil, err
	}

	var m Message
	switch typ {
	case TypeCounterTurn:
		m = &CounterTurn{}
	case TypeWon:
		m = &Won{}
	case TypeState:
		m = &State{}
	case TypeAck:
		m = &Ack{}
	case TypeError:
		m = &Error{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, typ)
	}
	if _, err := m.UnmarshalMsg(data); err != nil {
		return nil, err
	}
	return m, nil
}
