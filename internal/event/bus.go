package event

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"concert-booking/pkg/errs"
)

func marshaler() cqrs.JSONMarshaler {
	return cqrs.JSONMarshaler{
		GenerateName: cqrs.StructName,
	}
}

// NewPubSub is the in-process transport; events never leave the process.
func NewPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)
}

func NewEventBus(publisher message.Publisher, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	bus, err := cqrs.NewEventBusWithConfig(publisher, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: marshaler(),
		Logger:    logger,
	})
	if err != nil {
		return nil, errs.Wrap(err, "create event bus")
	}
	return bus, nil
}
