package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs an Asynq server with the given handlers. Handlers are
// passed in by main to keep this package free of service imports.
func StartWorker(redisURI string, handlers map[string]asynq.HandlerFunc) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{"default": 1},
		},
	)

	mux := asynq.NewServeMux()
	for taskType, h := range handlers {
		mux.HandleFunc(taskType, h)
	}

	log.Println("✅ Asynq worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatalf("❌ Asynq worker stopped: %v", err)
	}
}

// DeleteTask removes a previously scheduled task, if any.
func DeleteTask(taskID string, redisURI string) {
	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: redisURI})
	err := inspector.DeleteTask("default", taskID)
	if err != nil && err != asynq.ErrTaskNotFound {
		log.Println("⚠️ Failed to delete old task "+taskID+", skipping:", err)
	} else if err == nil {
		log.Println("🗑️ Deleted previous task:", taskID)
	}
}
