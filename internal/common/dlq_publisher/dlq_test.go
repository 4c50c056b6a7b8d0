package dlqpublisher

import (
	"testing"
	"time"

	"github.com/ezfinancial/go-entry-engine/internal/models"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"

	mockSarama "github.com/Shopify/sarama/mocks"
)

func TestNew(t *testing.T) {
	sp := mockSarama.NewSyncProducer(t, nil)
	topic := "entries.proposed.dlq"

	got := New(sp, topic)
	assert.Equal(t, kafkaDlq{producer: sp, topic: topic}, got)
}

func TestPublish(t *testing.T) {
	type fields struct {
		producer *mockSarama.SyncProducer
		topic    string
	}
	type args struct {
		message models.FailedMessage
	}

	tests := []struct {
		name    string
		args    args
		doMock  func(f fields)
		wantErr bool
	}{
		{
			name: "success publish message",
			args: args{
				message: models.FailedMessage{
					Timestamp:  time.Now(),
					Payload:    []byte(`{"key": "value"}`),
					CauseError: assert.AnError,
				},
			},
			doMock: func(f fields) {
				f.producer.ExpectSendMessageAndSucceed()
			},
			wantErr: false,
		},
		{
			name: "success publish message without giving error",
			args: args{
				message: models.FailedMessage{
					Timestamp:  time.Now(),
					Payload:    []byte(`{"key": "value"}`),
					CauseError: nil,
				},
			},
			doMock: func(f fields) {
				f.producer.ExpectSendMessageAndSucceed()
			},
			wantErr: false,
		},
		{
			name: "failed publish message",
			args: args{
				message: models.FailedMessage{
					Timestamp:  time.Now(),
					Payload:    []byte(`{"key": "value"}`),
					CauseError: nil,
				},
			},
			doMock: func(f fields) {
				f.producer.ExpectSendMessageAndFail(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				producer: mockSarama.NewSyncProducer(t, nil),
				topic:    "entries.proposed.dlq",
			}
			if tt.doMock != nil {
				tt.doMock(f)
			}

			var producer sarama.SyncProducer = f.producer
			d := kafkaDlq{
				producer: producer,
				topic:    f.topic,
			}
			err := d.Publish(tt.args.message)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
