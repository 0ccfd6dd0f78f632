package message

import (
	"github.com/pion/logging"

	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
	"github.com/rfidware/llrp/pkg/wire"
)

// ROAccessReportMessage carries zero or more tag reports (LLRP
// Specification Section 17.1.62). It is sent unsolicited by the
// reader whenever a report trigger fires.
type ROAccessReportMessage struct {
	TagReportData []*param.TagReportData
}

func (m *ROAccessReportMessage) Encode(messageID uint32) []byte {
	w := wire.NewWriterSize(0)
	for _, t := range m.TagReportData {
		w.PutBytes(t.Encode())
	}
	return frame.Encode(param.MsgROAccessReport, messageID, w.Bytes())
}

// DecodeROAccessReportMessage decodes an RO_ACCESS_REPORT body. log,
// if non-nil, is threaded through to param.DecodeTagReportData to
// trace unrecognized trailing TVs; pass nil to disable.
func DecodeROAccessReportMessage(body []byte, log logging.LeveledLogger) (*ROAccessReportMessage, error) {
	msg := &ROAccessReportMessage{}
	rest := body
	for {
		t, ok := param.PeekTLVType(rest)
		if !ok || t != param.TypeTagReportData {
			break
		}
		tr, next, err := param.DecodeTagReportData(rest, log)
		if err != nil {
			return nil, err
		}
		msg.TagReportData = append(msg.TagReportData, tr)
		rest = next
	}
	if len(rest) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return msg, nil
}

// KeepaliveMessage is sent unsolicited by the reader on the cadence
// configured by KeepaliveSpec (LLRP Specification Section 17.1.63).
// It carries no fields.
type KeepaliveMessage struct{}

func (m *KeepaliveMessage) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgKeepalive, messageID, nil)
}

func DecodeKeepaliveMessage(body []byte) (*KeepaliveMessage, error) {
	if len(body) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &KeepaliveMessage{}, nil
}

// KeepaliveAckMessage is the client's reply to a KeepaliveMessage
// (LLRP Specification Section 17.1.64). It carries no fields.
type KeepaliveAckMessage struct{}

func (m *KeepaliveAckMessage) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgKeepaliveAck, messageID, nil)
}

func DecodeKeepaliveAckMessage(body []byte) (*KeepaliveAckMessage, error) {
	if len(body) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &KeepaliveAckMessage{}, nil
}
