package progression

// Metric selects which counter a badge threshold applies to.
type Metric string

const (
	MetricDays  Metric = "days"
	MetricTasks Metric = "tasks"
)

// Badge is one entry of the static achievement catalog.
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Requirement string `json:"requirement"`
	Metric      Metric `json:"metric"`
	Threshold   int    `json:"threshold"`
}

// BadgeState is a catalog entry plus its unlock state for one member.
type BadgeState struct {
	Badge
	Unlocked bool `json:"unlocked"`
}

// Catalog is the fixed achievement list, in display order. Thresholds are part
// of the product definition and are not stored in the database.
var Catalog = []Badge{
	{ID: "start", Title: "Primeiro Passo", Description: "Completou o Dia 1 do desafio.", Requirement: "Completar Dia 1", Metric: MetricDays, Threshold: 1},
	{ID: "focus", Title: "Foco Total", Description: "Completou 5 tarefas.", Requirement: "5 Tarefas", Metric: MetricTasks, Threshold: 5},
	{ID: "executor", Title: "Executor", Description: "Completou 10 tarefas.", Requirement: "10 Tarefas", Metric: MetricTasks, Threshold: 10},
	{ID: "momentum", Title: "Pegando Ritmo", Description: "Completou 3 dias consecutivos.", Requirement: "Completar 3 Dias", Metric: MetricDays, Threshold: 3},
	{ID: "halfway", Title: "Meio Caminho", Description: "Chegou na metade! 7 dias completados.", Requirement: "Completar 7 Dias", Metric: MetricDays, Threshold: 7},
	{ID: "imparavel", Title: "Imparável", Description: "Completou 25 tarefas.", Requirement: "25 Tarefas", Metric: MetricTasks, Threshold: 25},
	{ID: "reta_final", Title: "Reta Final", Description: "Completou 12 dias do desafio.", Requirement: "Completar 12 Dias", Metric: MetricDays, Threshold: 12},
	{ID: "lenda_desafio", Title: "Lenda do Desafio", Description: "Completou 40 tarefas.", Requirement: "40 Tarefas", Metric: MetricTasks, Threshold: 40},
	{ID: "fire_master", Title: "Mestre FIRE", Description: "Completou todo o desafio de 15 dias.", Requirement: "Completar 15 Dias", Metric: MetricDays, Threshold: 15},
}

// EvaluateBadges resolves unlock state for the whole catalog given the two
// aggregate counters, and returns the first still-locked badge in catalog
// order for the "what's next" widget (nil when everything is unlocked).
func EvaluateBadges(tasksCompleted, daysCompleted int) ([]BadgeState, *Badge) {
	states := make([]BadgeState, len(Catalog))
	var next *Badge
	for i, badge := range Catalog {
		counter := tasksCompleted
		if badge.Metric == MetricDays {
			counter = daysCompleted
		}
		states[i] = BadgeState{Badge: badge, Unlocked: counter >= badge.Threshold}
		if !states[i].Unlocked && next == nil {
			b := badge
			next = &b
		}
	}
	return states, next
}
