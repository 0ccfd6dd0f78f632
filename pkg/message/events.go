package message

import (
	"github.com/rfidware/llrp/pkg/frame"
	"github.com/rfidware/llrp/pkg/param"
)

// ReaderEventNotificationMessage reports a reader-generated event,
// such as a connection attempt or an ROSpec starting (LLRP
// Specification Section 17.1.32).
type ReaderEventNotificationMessage struct {
	ReaderEventNotificationData *param.ReaderEventNotificationData
}

func (m *ReaderEventNotificationMessage) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgReaderEventNotification, messageID, m.ReaderEventNotificationData.Encode())
}

func DecodeReaderEventNotificationMessage(body []byte) (*ReaderEventNotificationMessage, error) {
	data, tail, err := param.DecodeReaderEventNotificationData(body)
	if err != nil {
		return nil, err
	}
	if len(tail) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &ReaderEventNotificationMessage{ReaderEventNotificationData: data}, nil
}

// EnableEventsAndReportsMessage tells the reader to resume delivering
// events and reports that were held while the connection was lost, per
// a prior EventsAndReports configuration (LLRP Specification Section
// 17.1.33). It carries no fields.
type EnableEventsAndReportsMessage struct{}

func (m *EnableEventsAndReportsMessage) Encode(messageID uint32) []byte {
	return frame.Encode(param.MsgEnableEventsAndReports, messageID, nil)
}

func DecodeEnableEventsAndReportsMessage(body []byte) (*EnableEventsAndReportsMessage, error) {
	if len(body) != 0 {
		return nil, param.ErrTrailingBytes
	}
	return &EnableEventsAndReportsMessage{}, nil
}
