package service

import (
	"context"
	"time"

	"github.com/alexanderramin/agenda/internal/occurrence"
	"github.com/alexanderramin/agenda/internal/repository"
)

type agendaService struct {
	items    repository.ItemRepo
	observer UseCaseObserver
}

func NewAgendaService(items repository.ItemRepo, observers ...UseCaseObserver) AgendaService {
	return &agendaService{
		items:    items,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Day assembles the board for a single calendar day: items active on that
// day, timed ones sorted by start and paired with their countdown status.
// The reference instant is sampled once by the caller and threaded through
// every status computation.
func (s *agendaService) Day(ctx context.Context, day, now time.Time) (*DayBoard, error) {
	started := time.Now()

	all, err := s.items.List(ctx)
	if err != nil {
		s.observe(ctx, "agenda_day", started, err)
		return nil, err
	}

	active := all[:0:0]
	for _, item := range all {
		if occurrence.ActiveOn(item, day) {
			active = append(active, item)
		}
	}
	occurrence.SortActive(active)

	board := &DayBoard{Day: day, Entries: make([]AgendaEntry, 0, len(active))}
	for _, item := range active {
		board.Entries = append(board.Entries, AgendaEntry{
			Item:   item,
			Status: occurrence.Status(item, day, now),
		})
	}

	s.observe(ctx, "agenda_day", started, nil)
	return board, nil
}

// Week returns seven consecutive day boards starting at start, the rolling
// window the weekly view pages through.
func (s *agendaService) Week(ctx context.Context, start, now time.Time) ([]*DayBoard, error) {
	boards := make([]*DayBoard, 0, 7)
	for d := 0; d < 7; d++ {
		board, err := s.Day(ctx, start.AddDate(0, 0, d), now)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

func (s *agendaService) observe(ctx context.Context, name string, started time.Time, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	})
}
