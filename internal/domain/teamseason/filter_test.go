package teamseason

import (
	"errors"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr bool
	}{
		{name: "open", bounds: Bounds{}},
		{name: "low only", bounds: Bounds{Low: ptr(3)}},
		{name: "high only", bounds: Bounds{High: ptr(3)}},
		{name: "equal", bounds: Bounds{Low: ptr(3), High: ptr(3)}},
		{name: "inverted", bounds: Bounds{Low: ptr(4), High: ptr(3)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate("wins")
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() err=%v wantErr=%v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFilter) {
				t.Fatalf("expected ErrInvalidFilter, got %v", err)
			}
		})
	}
}

func TestRecordFilter_ValidateJoinsErrors(t *testing.T) {
	f := RecordFilter{
		Wins:  Bounds{Low: ptr(10), High: ptr(1)},
		Draws: Bounds{Low: ptr(5), High: ptr(2)},
	}
	err := f.Validate()
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestPage(t *testing.T) {
	if (Page{}).Enabled() {
		t.Fatalf("zero page should disable pagination")
	}
	if got := (Page{Number: 3, Size: 10}).Offset(); got != 20 {
		t.Fatalf("unexpected offset: %d", got)
	}
	if err := (PointsFilter{Page: Page{Number: -1}}).Validate(); err == nil {
		t.Fatalf("expected error for negative page")
	}
	if err := (PointsFilter{Page: Page{Number: 1, Size: 0}}).Validate(); err == nil {
		t.Fatalf("expected error for empty page size")
	}
}
