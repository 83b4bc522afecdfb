package scheduler

// scheduler.go — notificaciones programadas en el tiempo.
//
// Cada evento vive en su propio goroutine con un timer; el ciclo es
// pending → fired → descartado (o re-armado si el evento es periódico).
// La entrega es best-effort: un Send fallido se loguea y el evento se da
// por consumido — nunca se reintenta.

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/solbot/internal/domain"
	"github.com/alejandrodnm/solbot/internal/ports"
)

// Scheduler agenda NotificationEvents y los entrega vía el Messenger.
type Scheduler struct {
	messenger ports.Messenger
	wg        sync.WaitGroup
}

// New crea un Scheduler que entrega por el messenger dado.
func New(messenger ports.Messenger) *Scheduler {
	return &Scheduler{messenger: messenger}
}

// Task es el handle de un evento agendado. Cancel detiene un disparo
// pendiente; sobre un task ya disparado (one-shot) no tiene efecto.
type Task struct {
	ID     string
	cancel chan struct{}
	once   sync.Once
}

// Cancel detiene el task. Idempotente.
func (t *Task) Cancel() {
	t.once.Do(func() { close(t.cancel) })
}

// Schedule agenda el evento y devuelve su handle. El task muere solo al
// dispararse (one-shot), al cancelarlo, o cuando ctx se cancela.
func (s *Scheduler) Schedule(ctx context.Context, event domain.NotificationEvent) *Task {
	task := &Task{
		ID:     uuid.NewString(),
		cancel: make(chan struct{}),
	}

	slog.Debug("notification scheduled",
		"task_id", task.ID,
		"fire_at", event.FireAt,
		"every", event.Every,
		"conversation", event.TargetConversationID,
	)

	s.wg.Add(1)
	go s.run(ctx, event, task)
	return task
}

// Wait bloquea hasta que todos los tasks hayan terminado. Para el shutdown.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, event domain.NotificationEvent, task *Task) {
	defer s.wg.Done()

	timer := time.NewTimer(time.Until(event.FireAt))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-task.cancel:
			slog.Debug("notification cancelled", "task_id", task.ID)
			return
		case <-timer.C:
			s.deliver(ctx, event, task)
			if event.Every <= 0 {
				return
			}
			timer.Reset(event.Every)
		}
	}
}

// deliver envía el mensaje. El fallo se loguea y se descarta: best-effort.
func (s *Scheduler) deliver(ctx context.Context, event domain.NotificationEvent, task *Task) {
	if err := s.messenger.Send(ctx, event.TargetConversationID, event.Message); err != nil {
		slog.Warn("notification delivery failed",
			"task_id", task.ID,
			"conversation", event.TargetConversationID,
			"err", err,
		)
		return
	}
	slog.Debug("notification delivered", "task_id", task.ID)
}
