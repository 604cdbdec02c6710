package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
)

// EnginePanel shows the engine state and offers pause and restart buttons.
type EnginePanel struct{}

func (p *EnginePanel) Render(frame *host.Frame) {
	g := frame.Game

	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 360), imgui.CondOnce)
	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Paused: %t", g.Paused()))
	if g.GameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.Text("Game over: false")
	}
	imgui.Text(fmt.Sprintf("Locked cells: %d", g.Board().Occupied()))

	pauseLabel := "Pause"
	if g.Paused() {
		pauseLabel = "Resume"
	}
	if imgui.Button(pauseLabel) {
		g.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		g.Restart()
	}

	imgui.Separator()
	current := g.Current()
	imgui.Text(fmt.Sprintf("Current: %s ghost y=%d", current, g.GhostY()))
	matrixText(current.Cells)
	imgui.Text(fmt.Sprintf("Next: %s", g.Next().Shape))
	matrixText(g.Next().Cells)

	if len(frame.Events) > 0 {
		imgui.Separator()
		for _, ev := range frame.Events {
			imgui.BulletText(ev.String())
		}
	}

	imgui.End()
}

func matrixText(m game.Matrix) {
	for _, line := range strings.Split(m.String(), "\n") {
		if line != "" {
			imgui.Text(line)
		}
	}
}

// SchedulerPanel shows per-system timings and a frame time graph.
type SchedulerPanel struct {
	Scheduler *host.Scheduler

	history *frameHistory
}

func NewSchedulerPanel(s *host.Scheduler, historyFrames int) *SchedulerPanel {
	return &SchedulerPanel{
		Scheduler: s,
		history:   newFrameHistory(historyFrames),
	}
}

func (p *SchedulerPanel) Render(frame *host.Frame) {
	p.history.push(float32(frame.DeltaTime * 1000.0))

	imgui.SetNextWindowPosV(imgui.NewVec2(380, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 280), imgui.CondOnce)
	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.Scheduler.GetStats()
	avg := p.history.average()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.Text(fmt.Sprintf("Max Frame Time: %.2f ms", p.history.max()))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.history.samples[0], int32(len(p.history.samples)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
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

	imgui.End()
}

// SpawnPanel shows session statistics and how often each shape was dealt.
type SpawnPanel struct{}

func (p *SpawnPanel) Render(frame *host.Frame) {
	stats := frame.Game.Stats()

	imgui.SetNextWindowPosV(imgui.NewVec2(650, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 300), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Pieces locked: %d", stats.PiecesLocked))
	imgui.Text(fmt.Sprintf("Lines cleared: %d", stats.LinesCleared))
	imgui.Text(fmt.Sprintf("Games over: %d", stats.GamesOver))

	if imgui.TreeNodeStr("Spawn Frequency") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Share")
			imgui.TableHeadersRow()

			for _, row := range SpawnRows(stats) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.Shape.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Count))
				imgui.TableNextColumn()
				imgui.TextUnformatted(row.Percent())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// SpawnRow is one line of the spawn frequency table.
type SpawnRow struct {
	Shape game.Shape
	Count int
	Share float64
}

// Percent formats Share for display. The result contains a literal '%', so it
// must be drawn with imgui.TextUnformatted.
func (r SpawnRow) Percent() string {
	return fmt.Sprintf("%.1f%%", r.Share*100)
}

// SpawnRows lists every shape with its spawn count and share of all spawns.
func SpawnRows(stats game.StatsSnapshot) []SpawnRow {
	rows := make([]SpawnRow, 0, game.ShapeCount)
	for s := range game.Shape(game.ShapeCount) {
		rows = append(rows, SpawnRow{
			Shape: s,
			Count: stats.Spawned[s],
			Share: stats.Frequency(s),
		})
	}
	return rows
}
