package movement

import "testing"

func TestComputeCompensation(t *testing.T) {
	summary := ComputeCompensation(3000, 500, 3600, 600)
	if summary.CurrentTotal != 3500 {
		t.Fatalf("expected current total 3500, got %v", summary.CurrentTotal)
	}
	if summary.ProposedTotal != 4200 {
		t.Fatalf("expected proposed total 4200, got %v", summary.ProposedTotal)
	}
	if summary.Delta != 700 {
		t.Fatalf("expected delta 700, got %v", summary.Delta)
	}
	if summary.DeltaPercent != 20 {
		t.Fatalf("expected delta 20%%, got %v", summary.DeltaPercent)
	}
}

func TestComputeCompensationRoundsToCents(t *testing.T) {
	summary := ComputeCompensation(3000, 0, 3100.005, 0)
	if summary.Delta != 100.01 {
		t.Fatalf("expected cent rounding, got %v", summary.Delta)
	}
}

func TestComputeCompensationZeroCurrentPackage(t *testing.T) {
	summary := ComputeCompensation(0, 0, 2500, 0)
	if summary.DeltaPercent != 0 {
		t.Fatalf("expected zero percentage for zero current package, got %v", summary.DeltaPercent)
	}
	if summary.Delta != 2500 {
		t.Fatalf("expected delta 2500, got %v", summary.Delta)
	}
}

func TestComputeCompensationPayCut(t *testing.T) {
	summary := ComputeCompensation(4000, 0, 3000, 0)
	if summary.Delta != -1000 || summary.DeltaPercent != -25 {
		t.Fatalf("expected -1000 / -25%%, got %v / %v", summary.Delta, summary.DeltaPercent)
	}
}

func TestMotivoEnum(t *testing.T) {
	if len(Motivos) != 9 {
		t.Fatalf("expected 9 motivos, got %d", len(Motivos))
	}
	if !ValidMotivo("Promoção") {
		t.Fatal("expected Promoção to be a valid motivo")
	}
	if ValidMotivo("promoção") {
		t.Fatal("motivo matching must be byte-exact")
	}
	if !ValidRescissionType("Pedido de Demissão") {
		t.Fatal("expected Pedido de Demissão to be a valid rescission type")
	}
	if ValidRescissionType("Outro") {
		t.Fatal("unexpected rescission type accepted")
	}
}
