package cron

import (
	"encoding/json"

	"github.com/RajRabadiya018/CarringNanny/config"

	"github.com/hibiken/asynq"
)

// TypePricingAudit re-derives and repairs a single booking's stored price.
const TypePricingAudit = "pricing:audit"

// PricingAuditPayload identifies the booking to audit.
type PricingAuditPayload struct {
	BookingID string `json:"bookingId"`
}

// NewPricingAuditTask builds the asynq task for one booking.
func NewPricingAuditTask(bookingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PricingAuditPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePricingAudit, payload), nil
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewTaskClient returns an asynq client for enqueueing background tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}
