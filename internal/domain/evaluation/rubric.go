package evaluation

import "fmt"

// A supervisor/promotion review is scored against a versioned rubric rather
// than a hardcoded formula. Two incompatible rubrics exist in historical
// data; each evaluation records the version that scored it so old rows stay
// reproducible.
const (
	RubricStandard100 = "standard-100"
	RubricLegacy145   = "legacy-145"
)

type RubricItem struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Max   float64 `json:"max"`
}

type RubricCategory struct {
	Name  string       `json:"name"`
	Items []RubricItem `json:"items"`
}

type RubricThreshold struct {
	Min   float64 `json:"min"`
	Label string  `json:"label"`
}

type Rubric struct {
	Version    string            `json:"version"`
	Categories []RubricCategory  `json:"categories"`
	Thresholds []RubricThreshold `json:"thresholds"`
}

// Max is the rubric's total point ceiling (the "rule max").
func (r Rubric) Max() float64 {
	var max float64
	for _, category := range r.Categories {
		for _, item := range category.Items {
			max += item.Max
		}
	}
	return max
}

func (r Rubric) ItemKeys() []string {
	var keys []string
	for _, category := range r.Categories {
		for _, item := range category.Items {
			keys = append(keys, item.Key)
		}
	}
	return keys
}

func (r Rubric) item(key string) (RubricItem, bool) {
	for _, category := range r.Categories {
		for _, item := range category.Items {
			if item.Key == key {
				return item, true
			}
		}
	}
	return RubricItem{}, false
}

// Classify maps a final percentage to this rubric's own label table.
// Thresholds must be ordered highest first.
func (r Rubric) Classify(percentage float64) string {
	for _, threshold := range r.Thresholds {
		if percentage >= threshold.Min {
			return threshold.Label
		}
	}
	return "Insatisfatório"
}

// StandardRubric is the current 100-point, 5-category table.
func StandardRubric() Rubric {
	return Rubric{
		Version: RubricStandard100,
		Categories: []RubricCategory{
			{Name: "Assiduidade", Items: []RubricItem{
				{Key: "assiduidade_faltas_injustificadas", Label: "Faltas injustificadas", Max: 20},
				{Key: "assiduidade_atestados_medicos", Label: "Atestados médicos", Max: 5},
			}},
			{Name: "Disciplina", Items: []RubricItem{
				{Key: "disciplina_advertencias_pontos", Label: "Advertências", Max: 15},
				{Key: "disciplina_suspensoes", Label: "Suspensões", Max: 10},
			}},
			{Name: "Saúde e Segurança", Items: []RubricItem{
				{Key: "saude_restricoes_sesmt", Label: "Restrições SESMT", Max: 10},
			}},
			{Name: "Resultados na Área", Items: []RubricItem{
				{Key: "resultados_desempenho_tecnico", Label: "Desempenho técnico", Max: 25},
			}},
			{Name: "Desenvolvimento", Items: []RubricItem{
				{Key: "desenvolvimento_treinamentos", Label: "Participação em treinamentos", Max: 15},
			}},
		},
		Thresholds: []RubricThreshold{
			{Min: 90, Label: "Excelente"},
			{Min: 80, Label: "Muito Bom"},
			{Min: 70, Label: "Satisfatório"},
			{Min: 60, Label: "Regular"},
			{Min: 0, Label: "Insatisfatório"},
		},
	}
}

// LegacyRubric is the retired 145-point, 7-category table still referenced by
// historical evaluations. Its label set collapses the "Muito Bom" tier.
func LegacyRubric() Rubric {
	return Rubric{
		Version: RubricLegacy145,
		Categories: []RubricCategory{
			{Name: "Assiduidade", Items: []RubricItem{
				{Key: "assiduidade_faltas", Label: "Faltas", Max: 20},
				{Key: "assiduidade_atestados", Label: "Atestados", Max: 5},
			}},
			{Name: "Disciplina", Items: []RubricItem{
				{Key: "disciplina_advertencias", Label: "Advertências", Max: 15},
				{Key: "disciplina_comportamento", Label: "Comportamento", Max: 10},
			}},
			{Name: "Produtividade", Items: []RubricItem{
				{Key: "produtividade_qualidade", Label: "Qualidade", Max: 15},
				{Key: "produtividade_quantidade", Label: "Quantidade", Max: 15},
				{Key: "produtividade_prazos", Label: "Prazos", Max: 10},
			}},
			{Name: "Relacionamento", Items: []RubricItem{
				{Key: "relacionamento_equipe", Label: "Equipe", Max: 10},
				{Key: "relacionamento_clientes", Label: "Clientes", Max: 10},
			}},
			{Name: "Postura Profissional", Items: []RubricItem{
				{Key: "postura_apresentacao", Label: "Apresentação pessoal", Max: 10},
				{Key: "postura_comunicacao", Label: "Comunicação", Max: 10},
			}},
			{Name: "Engajamento", Items: []RubricItem{
				{Key: "engajamento_iniciativa", Label: "Iniciativa", Max: 5},
				{Key: "engajamento_comprometimento", Label: "Comprometimento", Max: 5},
			}},
			{Name: "Saúde e Segurança", Items: []RubricItem{
				{Key: "saude_restricoes", Label: "Restrições", Max: 5},
			}},
		},
		Thresholds: []RubricThreshold{
			{Min: 90, Label: "Excelente"},
			{Min: 70, Label: "Satisfatório"},
			{Min: 60, Label: "Regular"},
			{Min: 0, Label: "Insatisfatório"},
		},
	}
}

func RubricByVersion(version string) (Rubric, error) {
	switch version {
	case RubricStandard100, "":
		return StandardRubric(), nil
	case RubricLegacy145:
		return LegacyRubric(), nil
	default:
		return Rubric{}, fmt.Errorf("unknown rubric version %q", version)
	}
}
