package evaluation

const (
	Period45Days = "45 dias"
	Period90Days = "90 dias"

	OutcomeRetained   = "Permanece na empresa"
	OutcomeTerminated = "Desligado durante o período de experiência"

	// Experience classification labels.
	ClassAboveExpectations = "Acima das expectativas"
	ClassSatisfactory      = "Satisfatório"
	ClassDevelopment       = "Potencial de desenvolvimento"
	ClassBelowCompetencies = "Não apresentou competências"

	// Quarterly (IDI) classification labels.
	IDIExcellent     = "Excelente desempenho"
	IDIAboveExpected = "Acima do esperado"
	IDIAsExpected    = "Dentro do esperado"
	IDIBelowExpected = "Abaixo do esperado"
	IDIWellBelow     = "Muito abaixo do esperado"
)

var Periods = []string{Period45Days, Period90Days}

var Outcomes = []string{OutcomeRetained, OutcomeTerminated}
