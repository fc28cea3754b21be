package finesweep

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=workerpool.go -destination=mock_workerpool.go -package=finesweep

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

var ErrPoolClosed = errors.New("worker pool closed")

// WorkerPool runs tasks on a fixed number of goroutines. AddTask blocks
// while every worker is busy and the queue is full.
type WorkerPool struct {
	tasks chan Task
	done  chan struct{}
}

func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	wp := &WorkerPool{
		tasks: make(chan Task, size),
		done:  make(chan struct{}),
	}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.tasks:
			if err := task(); err != nil {
				zap.L().Error("penalty task failed", zap.Error(err))
			}
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-wp.done:
		return ErrPoolClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.done:
		return ErrPoolClosed
	case wp.tasks <- task:
		return nil
	}
}

// Close stops the workers. Queued tasks that haven't started are dropped.
func (wp *WorkerPool) Close() {
	select {
	case <-wp.done:
	default:
		close(wp.done)
	}
}
