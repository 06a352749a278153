package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPhaseLabels_StepsAreCanonicalSequence(t *testing.T) {
	if len(PhaseLabels) != PhaseStepCount {
		t.Fatalf("PhaseLabels has %d entries, want %d", len(PhaseLabels), PhaseStepCount)
	}
	seen := make(map[int]ClientPhase)
	for phase, info := range PhaseLabels {
		if info.Step < 1 || info.Step > PhaseStepCount {
			t.Errorf("phase %q step %d out of range 1..%d", phase, info.Step, PhaseStepCount)
		}
		if prev, dup := seen[info.Step]; dup {
			t.Errorf("step %d assigned to both %q and %q", info.Step, prev, phase)
		}
		seen[info.Step] = phase
		if info.Label == "" {
			t.Errorf("phase %q has empty label", phase)
		}
	}
	if seen[1] != PhaseInitialConsultation {
		t.Errorf("step 1 = %q, want %q", seen[1], PhaseInitialConsultation)
	}
	if seen[PhaseStepCount] != PhaseCompleted {
		t.Errorf("step %d = %q, want %q", PhaseStepCount, seen[PhaseStepCount], PhaseCompleted)
	}
}

func TestStatusLabels_Exhaustive(t *testing.T) {
	statuses := []NegotiationStatus{
		StatusNotContacted, StatusContacted, StatusNegotiating, StatusOfferMade,
		StatusOfferAccepted, StatusPaymentPlan, StatusDone, StatusRejected,
	}
	if len(StatusLabels) != len(statuses) {
		t.Fatalf("StatusLabels has %d entries, want %d", len(StatusLabels), len(statuses))
	}
	for _, s := range statuses {
		if _, ok := StatusLabels[s]; !ok {
			t.Errorf("StatusLabels missing %q", s)
		}
	}
}

func TestDeadlineTypeLabels_Exhaustive(t *testing.T) {
	types := []DeadlineType{
		DeadlineInsolvencyFiling, DeadlinePaymentOrder, DeadlineEnforcement,
		DeadlineSettlementOffer, DeadlineDeferral, DeadlineInstallmentPlan,
		DeadlineCourtDate,
	}
	if len(DeadlineTypeLabels) != len(types) {
		t.Fatalf("DeadlineTypeLabels has %d entries, want %d", len(DeadlineTypeLabels), len(types))
	}
	for _, d := range types {
		if _, ok := DeadlineTypeLabels[d]; !ok {
			t.Errorf("DeadlineTypeLabels missing %q", d)
		}
	}
}

func TestDocTypeForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want DocType
	}{
		{"pdf", DocPDF},
		{"doc", DocWord},
		{"docx", DocWord},
		{"xls", DocExcel},
		{"xlsx", DocExcel},
		{"csv", DocExcel},
		{"eml", DocEmail},
		{"msg", DocEmail},
		{"jpg", DocScan},
		{"png", DocScan},
		{"webp", DocScan},
		{"txt", DocNote},
		{"zzz", DocNote},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := DocTypeForExtension(tt.ext); got != tt.want {
				t.Errorf("DocTypeForExtension(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(0), "0,00 €"},
		{decimal.NewFromInt(850), "850,00 €"},
		{decimal.NewFromInt(34520), "34.520,00 €"},
		{decimal.NewFromInt(185000), "185.000,00 €"},
		{decimal.NewFromFloat(24680.45), "24.680,45 €"},
		{decimal.NewFromFloat(-185.5), "-185,50 €"},
		{decimal.NewFromInt(1234567), "1.234.567,00 €"},
	}
	for _, tt := range tests {
		if got := FormatEUR(tt.in); got != tt.want {
			t.Errorf("FormatEUR(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
