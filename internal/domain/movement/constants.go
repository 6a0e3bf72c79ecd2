package movement

// Motivo values are stored verbatim; indicator histograms group by them.
const (
	MotivoAumentoQuadro        = "Aumento de Quadro"
	MotivoSubstituicao         = "Substituição"
	MotivoTransferenciaArea    = "Transferência - Área"
	MotivoPromocao             = "Promoção"
	MotivoDemissao             = "Demissão"
	MotivoEstagio              = "Estágio"
	MotivoPrestadorServico     = "Prestador de Serviço"
	MotivoTransferenciaUnidade = "Transferência - Unidade"
	MotivoAprendiz             = "Aprendiz"
)

var Motivos = []string{
	MotivoAumentoQuadro,
	MotivoSubstituicao,
	MotivoTransferenciaArea,
	MotivoPromocao,
	MotivoDemissao,
	MotivoEstagio,
	MotivoPrestadorServico,
	MotivoTransferenciaUnidade,
	MotivoAprendiz,
}

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Rescission types split terminations into voluntary ("Pedido de Demissão")
// and involuntary (the rest except contract expiry) for turnover analysis.
const (
	RescissaoIniciativaEmpresa = "Iniciativa da Empresa"
	RescissaoPedidoDemissao    = "Pedido de Demissão"
	RescissaoTerminoContrato   = "Término de Contrato"
	RescissaoJustaCausa        = "Justa Causa"
)

var RescissionTypes = []string{
	RescissaoIniciativaEmpresa,
	RescissaoPedidoDemissao,
	RescissaoTerminoContrato,
	RescissaoJustaCausa,
}

func ValidMotivo(motivo string) bool {
	for _, candidate := range Motivos {
		if motivo == candidate {
			return true
		}
	}
	return false
}

func ValidRescissionType(value string) bool {
	for _, candidate := range RescissionTypes {
		if value == candidate {
			return true
		}
	}
	return false
}
