package service

import "VidTube.com/pkg/mq"

var producer *mq.Producer

// SetProducer hands the video services the process-wide event producer.
// A nil producer disables event publishing.
func SetProducer(p *mq.Producer) {
	producer = p
}
