package logbuffer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sitewatch/internal/monitor/model"
	"sitewatch/internal/monitor/repository"

	"go.uber.org/zap"
)

// Buffer collects log records emitted by monitoring cycles and flushes them
// to the log store in fixed time windows, so write load does not grow
// linearly with site count times check frequency.
//
// Flush failure policy: the batch is re-queued at the front of the buffer and
// retried at the next tick. The buffer is capped at maxSize; when the cap is
// exceeded the oldest records are dropped with a warning.
type Buffer struct {
	mu       sync.Mutex
	records  []model.LogRecord
	logs     repository.LogRepository
	interval time.Duration
	maxSize  int
	logger   *zap.Logger
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewBuffer(logs repository.LogRepository, interval time.Duration, maxSize int, logger *zap.Logger) *Buffer {
	return &Buffer{
		logs:     logs,
		interval: interval,
		maxSize:  maxSize,
		logger:   logger,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Append queues one record. Never blocks on a flush in progress.
func (b *Buffer) Append(record model.LogRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, record)
	if overflow := len(b.records) - b.maxSize; overflow > 0 {
		b.records = b.records[overflow:]
		b.logger.Warn("log buffer full, dropped oldest records", zap.Int("dropped", overflow))
	}
}

// Pending returns a snapshot of the records queued since the last flush, for
// readers that need results not yet visible in the log store.
func (b *Buffer) Pending() []model.LogRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot := make([]model.LogRecord, len(b.records))
	copy(snapshot, b.records)
	return snapshot
}

// Flush atomically drains the queued records and submits them as one batch
// write. On failure the batch is re-queued in front of any records appended
// during the write.
func (b *Buffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	batch := b.records
	b.records = nil
	b.mu.Unlock()
	if len(batch) == 0 {
		return nil
	}
	err := b.logs.BulkInsert(ctx, batch)
	if err != nil {
		b.mu.Lock()
		b.records = append(batch, b.records...)
		if overflow := len(b.records) - b.maxSize; overflow > 0 {
			b.records = b.records[overflow:]
			b.logger.Warn("log buffer full, dropped oldest records", zap.Int("dropped", overflow))
		}
		b.mu.Unlock()
		return fmt.Errorf("Buffer.Flush: %w", err)
	}
	return nil
}

func (b *Buffer) Start() {
	go func() {
		defer close(b.doneChan)
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				b.flushWithTimeout()
			case <-b.stopChan:
				b.flushWithTimeout()
				return
			}
		}
	}()
}

// Stop performs a final flush and waits for the flush loop to exit.
func (b *Buffer) Stop() {
	close(b.stopChan)
	<-b.doneChan
}

func (b *Buffer) flushWithTimeout() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := b.Flush(ctx); err != nil {
		b.logger.Error("failed to flush log buffer", zap.Error(err))
	}
}
