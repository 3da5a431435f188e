package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/RajRabadiya018/CarringNanny/services/booking"

	"github.com/hibiken/asynq"
)

// InitPricingAuditWorker runs the async worker in background. Audits are
// idempotent: the handler re-runs the creation-time price derivation and only
// writes when the stored value drifted.
func InitPricingAuditWorker(bookingSvc booking.BookingService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePricingAudit, handlePricingAuditTask(bookingSvc))

	go func() {
		log.Println("[PricingAuditWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PricingAuditWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PricingAuditWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePricingAuditTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PricingAuditPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PricingAudit] invalid payload: %v", err)
			return err
		}

		b, changed, err := bookingSvc.AuditBookingPrice(p.BookingID)
		if err != nil {
			log.Printf("[PricingAudit] audit failed for booking %s: %v", p.BookingID, err)
			return err
		}
		if changed {
			log.Printf("[PricingAudit] booking %s price corrected to %.2f", b.ID, b.TotalPrice)
		}
		return nil
	}
}
