package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/confetti/burst"
)

// FrameHistory is a ring of frame times in milliseconds.
type FrameHistory struct {
	frames []float32
	index  int
	filled int
}

func NewFrameHistory(size int) *FrameHistory {
	if size < 1 {
		size = 1
	}
	return &FrameHistory{frames: make([]float32, size)}
}

// Record stores one frame's delta, given in seconds.
func (h *FrameHistory) Record(deltaTime float64) {
	h.frames[h.index] = float32(deltaTime * 1000.0)
	h.index = (h.index + 1) % len(h.frames)
	if h.filled < len(h.frames) {
		h.filled++
	}
}

// Average is the mean recorded frame time in milliseconds, or 0 before the
// first frame.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range h.frames[:h.filled] {
		sum += ft
	}
	return sum / float32(h.filled)
}

func (h *FrameHistory) Len() int {
	return h.filled
}

// FrameTimer measures wall-clock time between frames.
type FrameTimer struct {
	lastFrameTime time.Time
	now           func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
		now:           time.Now,
	}
}

// GetDeltaTime returns the seconds since the previous call, or since the
// timer was created.
func (ft *FrameTimer) GetDeltaTime() float64 {
	now := ft.now()
	delta := now.Sub(ft.lastFrameTime).Seconds()
	ft.lastFrameTime = now
	return delta
}

// StatsWindow shows particle counts, real frame times and per-system
// timings, and offers a button to fire an explosion at the viewport centre.
// Add its Render to a System.
type StatsWindow struct {
	Sim      *burst.Simulator
	Viewport burst.Viewport
	History  *FrameHistory
	Timer    *FrameTimer

	count int32
}

func NewStatsWindow(sim *burst.Simulator, viewport burst.Viewport, historyFrames int) *StatsWindow {
	return &StatsWindow{
		Sim:      sim,
		Viewport: viewport,
		History:  NewFrameHistory(historyFrames),
		Timer:    NewFrameTimer(),
		count:    int32(sim.Tuning().DefaultCount),
	}
}

// Tick records the wall-clock time since the previous frame.
func (w *StatsWindow) Tick() {
	w.History.Record(w.Timer.GetDeltaTime())
}

func (w *StatsWindow) Render() {
	w.Tick()

	if !imgui.BeginV("Confetti Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.Sim.Stats()
	imgui.Text(fmt.Sprintf("Active: %d", stats.Active))
	imgui.Text(fmt.Sprintf("Pending: %d", stats.Pending))
	imgui.Text(fmt.Sprintf("Spawned: %d  Culled: %d", stats.Spawned, stats.Culled))
	imgui.Text(fmt.Sprintf("Frames: %d (%s)", stats.Frames, stats.Elapsed))

	avg := w.History.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.History.frames[0], int32(len(w.History.frames)))

	imgui.Separator()
	imgui.Text("Particles:")
	imgui.SameLine()
	imgui.SetNextItemWidth(120)
	if imgui.InputInt("##count", &w.count) && w.count < 0 {
		w.count = 0
	}
	imgui.SameLine()
	if imgui.Button("Explode") {
		width, height := w.Viewport.Size()
		w.Sim.SpawnExplosion(burst.Vec2{X: width / 2, Y: height / 2}, int(w.count))
	}

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range w.Sim.Scheduler().GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Tuning") {
		t := w.Sim.Tuning()
		imgui.BulletText(fmt.Sprintf("gravity %.0f", t.Gravity))
		imgui.BulletText(fmt.Sprintf("drag %.3f @ %.0f Hz", t.Drag, t.RefreshRate))
		imgui.BulletText(fmt.Sprintf("speed [%.0f, %.0f]", t.SpeedMin, t.SpeedMax))
		imgui.BulletText(fmt.Sprintf("size [%.0f, %.0f]", t.SizeMin, t.SizeMax))
		imgui.BulletText(fmt.Sprintf("stagger %s", t.Stagger))
		imgui.TreePop()
	}

	imgui.End()
}
