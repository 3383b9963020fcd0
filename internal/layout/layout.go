// Package layout describes the workflow diagram as positioned nodes so any
// renderer can draw it without touching normalization.
package layout

import (
	"sort"

	"github.com/pablasso/fieldplan/internal/plan"
)

// Kind identifies what a node depicts.
type Kind string

const (
	KindStart       Kind = "start"
	KindSensor      Kind = "sensor"
	KindIntegration Kind = "integration"
	KindTask        Kind = "task"
	KindArrow       Kind = "arrow"
	KindAlexa       Kind = "alexa"
	KindReport      Kind = "report"
	KindEmail       Kind = "email"
)

// Direction is the way an arrow node points.
type Direction string

const (
	DirectionRight Direction = "right"
	DirectionDown  Direction = "down"
)

// Position is a node's anchor in diagram pixels; X is the horizontal center.
type Position struct {
	X int
	Y int
}

// Payload carries what a renderer needs to draw a node.
type Payload struct {
	Title       string
	Caption     string
	Sensor      plan.Tab
	Highlighted bool
	// TaskIndex is the index into the task sequence for task and arrow nodes,
	// and -1 otherwise.
	TaskIndex int
	Task      *plan.Task
	Direction Direction
}

// Node is one positioned diagram element.
type Node struct {
	Kind     Kind
	Position Position
	Payload  Payload
}

// Diagram geometry.
const (
	Width = 1500

	sensorTop     = 180
	sensorLeft    = 150
	sensorSpacing = 300

	startTop        = 40
	integrationTop  = 400
	taskGridTop     = 700
	taskRowPitch    = 300
	taskColumns     = 3
	arrowDownOffset = 150

	reviewTop = 3500
	reportTop = 3700
	emailTop  = 3950
)

var taskColumnX = [taskColumns]int{300, 750, 1200}

var sensors = []struct {
	tab     plan.Tab
	title   string
	caption string
}{
	{plan.TabSoilMoisture, "Sensor de Umidade do Solo", "Verifica a Umidade do Solo"},
	{plan.TabSoilTemperature, "Sensor de Temperatura do Solo", "Verifica a Temperatura do Solo"},
	{plan.TabBrightness, "Sensor de Luminosidade", "Verifica a Luminosidade"},
	{plan.TabAirTemperature, "Sensor de Temperatura do Ar", "Verifica a Temperatura do Ar"},
	{plan.TabAirHumidity, "Sensor de Umidade do Ar", "Verifica a Umidade do Ar"},
}

var alexaPositions = []Position{
	{750, 50}, {375, 350}, {1220, 350},
	{750, 650}, {375, 925}, {1220, 925},
	{750, 1250}, {375, 1550}, {1220, 1550},
	{750, 1850}, {375, 2150}, {1220, 2150},
	{750, 2450},
}

// Build lays out the diagram for tasks with the given active tab. The
// result is sorted by Y, then X.
func Build(tasks []plan.Task, active plan.Tab) []Node {
	nodes := make([]Node, 0, 16+2*len(tasks)+len(alexaPositions))

	nodes = append(nodes, Node{
		Kind:     KindStart,
		Position: Position{X: Width / 2, Y: startTop},
		Payload:  Payload{Title: "Iniciar", TaskIndex: -1},
	})

	for i, s := range sensors {
		nodes = append(nodes, Node{
			Kind:     KindSensor,
			Position: Position{X: sensorLeft + i*sensorSpacing, Y: sensorTop},
			Payload: Payload{
				Title:       s.title,
				Caption:     s.caption,
				Sensor:      s.tab,
				Highlighted: active == plan.TabAll || active == s.tab,
				TaskIndex:   -1,
			},
		})
	}

	nodes = append(nodes, Node{
		Kind:     KindIntegration,
		Position: Position{X: Width / 2, Y: integrationTop},
		Payload:  Payload{Title: "Integração", Caption: "AWS", TaskIndex: -1},
	})

	for i := range tasks {
		nodes = append(nodes, Node{
			Kind:     KindTask,
			Position: TaskPosition(i),
			Payload:  Payload{Title: tasks[i].Title, TaskIndex: i, Task: &tasks[i]},
		})
		if i < len(tasks)-1 {
			nodes = append(nodes, arrowBetween(i))
		}
	}

	if len(tasks) > 0 {
		for _, p := range alexaPositions {
			nodes = append(nodes, Node{
				Kind:     KindAlexa,
				Position: Position{X: p.X, Y: taskGridTop + p.Y},
				Payload:  Payload{Title: "Alexa", Caption: "Configuração de Integração com a Alexa", TaskIndex: -1},
			})
		}
	}

	bottom := bottomOffset(len(tasks))
	nodes = append(nodes,
		Node{
			Kind:     KindIntegration,
			Position: Position{X: Width / 2, Y: reviewTop + bottom},
			Payload:  Payload{Title: "Integração", Caption: "AWS", TaskIndex: -1},
		},
		Node{
			Kind:     KindReport,
			Position: Position{X: 490, Y: reportTop + bottom},
			Payload:  Payload{Title: "AWS", Caption: "QuickSight (Relatórios)", TaskIndex: -1},
		},
		Node{
			Kind:     KindReport,
			Position: Position{X: 1030, Y: reportTop + bottom},
			Payload:  Payload{Title: "AWS", Caption: "QuickSight (Relatórios)", TaskIndex: -1},
		},
		Node{
			Kind:     KindEmail,
			Position: Position{X: 375, Y: emailTop + bottom},
			Payload:  Payload{Title: "E-mail", Caption: "Envio de um relatório das tarefas do mês", TaskIndex: -1},
		},
		Node{
			Kind:     KindEmail,
			Position: Position{X: 1125, Y: emailTop + bottom},
			Payload:  Payload{Title: "E-mail", Caption: "Envio e alerta de novas tarefas do mês", TaskIndex: -1},
		},
	)

	sort.SliceStable(nodes, func(a, b int) bool {
		if nodes[a].Position.Y != nodes[b].Position.Y {
			return nodes[a].Position.Y < nodes[b].Position.Y
		}
		return nodes[a].Position.X < nodes[b].Position.X
	})
	return nodes
}

// TaskPosition returns the grid anchor of the task at index i.
func TaskPosition(i int) Position {
	return Position{
		X: taskColumnX[i%taskColumns],
		Y: taskGridTop + (i/taskColumns)*taskRowPitch,
	}
}

// Rows groups nodes that share a Y coordinate, preserving order.
func Rows(nodes []Node) [][]Node {
	var rows [][]Node
	for _, n := range nodes {
		if len(rows) > 0 && rows[len(rows)-1][0].Position.Y == n.Position.Y {
			rows[len(rows)-1] = append(rows[len(rows)-1], n)
			continue
		}
		rows = append(rows, []Node{n})
	}
	return rows
}

func arrowBetween(i int) Node {
	from, to := TaskPosition(i), TaskPosition(i+1)
	if from.Y == to.Y {
		return Node{
			Kind:     KindArrow,
			Position: Position{X: (from.X + to.X) / 2, Y: from.Y},
			Payload:  Payload{TaskIndex: i, Direction: DirectionRight},
		}
	}
	return Node{
		Kind:     KindArrow,
		Position: Position{X: Width / 2, Y: from.Y + arrowDownOffset},
		Payload:  Payload{TaskIndex: i, Direction: DirectionDown},
	}
}

// bottomOffset pushes the closing nodes below the task grid when the grid
// grows past the fixed review row.
func bottomOffset(taskCount int) int {
	if taskCount == 0 {
		return 0
	}
	lastY := TaskPosition(taskCount - 1).Y
	if lastY+taskRowPitch <= reviewTop {
		return 0
	}
	return lastY + taskRowPitch - reviewTop
}
