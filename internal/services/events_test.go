package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	pub := services.NewKafkaPublisher(mockWriter)
	userID := uuid.New()

	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, userID.String(), string(msgs[0].Key))

			var evt models.Event
			require.NoError(t, json.Unmarshal(msgs[0].Value, &evt))
			assert.Equal(t, models.EventPostCreated, evt.Type)
			assert.Equal(t, userID.String(), evt.UserID)
			assert.NotEmpty(t, evt.EventID)
			assert.NotZero(t, evt.Timestamp)
			assert.Equal(t, map[string]any{"post_id": "p1"}, evt.Payload)
			return nil
		})

	pub.Publish(context.Background(), models.EventPostCreated, userID, map[string]string{"post_id": "p1"})
}

func TestKafkaPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	pub := services.NewKafkaPublisher(mockWriter)

	mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	assert.NotPanics(t, func() {
		pub.Publish(context.Background(), models.EventUserSignedUp, uuid.New(), nil)
	})
}

func TestKafkaPublisher_NilWriter(t *testing.T) {
	pub := services.NewKafkaPublisher(nil)

	assert.NotPanics(t, func() {
		pub.Publish(context.Background(), models.EventUserSignedUp, uuid.New(), nil)
	})
	assert.NoError(t, pub.Close())
}

func TestKafkaPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	mockWriter.EXPECT().Close().Return(nil)

	assert.NoError(t, services.NewKafkaPublisher(mockWriter).Close())
}
