package burst

import (
	"context"
	"math"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in registration order, one pass per frame, and
// flushes the frame's commands afterwards.
type Scheduler struct {
	store    *Store
	display  Display
	viewport Viewport
	rand     Random
	ids      *idAllocator

	systems     []System
	systemStats []*systemStatsInternal

	clock  time.Duration
	frames int64

	// afterFlush receives the number of particles added and removed by each frame.
	afterFlush func(spawned, despawned int)
}

// NewScheduler creates a scheduler over the given store and collaborators.
func NewScheduler(store *Store, display Display, viewport Viewport, rnd Random) *Scheduler {
	return &Scheduler{
		store:    store,
		display:  display,
		viewport: viewport,
		rand:     rnd,
		ids:      &idAllocator{},
		systems:  make([]System, 0),
	}
}

// Register appends a system to the frame pipeline.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if name := systemType.Name(); name != "" {
		return name
	}
	return systemType.String()
}

// Elapsed returns the simulated time, in seconds, covered by all frames so far.
func (s *Scheduler) Elapsed() float64 {
	return s.clock.Seconds()
}

// Clock returns the simulated time covered by all frames so far. Frame
// deltas are rounded to the nanosecond before they are added, so the clock
// does not drift the way a running float sum does.
func (s *Scheduler) Clock() time.Duration {
	return s.clock
}

// Frames returns the number of frames executed.
func (s *Scheduler) Frames() int64 {
	return s.frames
}

// Once executes all registered systems once with the given delta time.
func (s *Scheduler) Once(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.clock += time.Duration(math.Round(dt * float64(time.Second)))
	s.frames++

	frame := &UpdateFrame{
		DeltaTime: dt,
		Elapsed:   s.clock.Seconds(),
		Clock:     s.clock,
		Commands:  newCommands(),
		Particles: s.store,
		Display:   s.display,
		Viewport:  s.viewport,
		Rand:      s.rand,
		ids:       s.ids,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	spawned, despawned := frame.Commands.Flush(s.store, s.display)
	if s.afterFlush != nil {
		s.afterFlush(spawned, despawned)
	}
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
