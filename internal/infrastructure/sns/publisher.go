package sns

import (
	"context"
	"encoding/json"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// DeliveryEvent is published to the notification topic every time the
// scheduler emits a smile, so push/websocket fan-out can run downstream.
type DeliveryEvent struct {
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	ImageURL       string    `json:"image_url"`
	Description    string    `json:"description"`
	LocationName   string    `json:"location_name"`
	SentAt         time.Time `json:"sent_at"`
}

// EventPublisher publishes smile delivery events.
type EventPublisher interface {
	PublishDelivery(ctx context.Context, ev DeliveryEvent) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewPublisher(region, topicARN string) (EventPublisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, err
	}
	return &publisher{client: sns.NewFromConfig(awsCfg), topicARN: topicARN}, nil
}

func (p *publisher) PublishDelivery(ctx context.Context, ev DeliveryEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := string(body)
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &p.topicARN,
		Message:  &msg,
	})
	return err
}
