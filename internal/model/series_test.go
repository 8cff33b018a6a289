package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// TestChartPointMarshalJSON tests the flattened chart-point shape.
//
// WHY: Consumers address asset columns by dynamic keys next to the fixed
// "date" and "sum" keys; nesting the values under a sub-object would break
// them silently.
func TestChartPointMarshalJSON(t *testing.T) {
	point := model.ChartPoint{
		Date:   "2021-06-15",
		Values: map[int64]float64{1: 1000, 2: 234.5},
		Sum:    1234.5,
	}

	raw, err := json.Marshal(point)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}

	want := `{"1":1000,"2":234.5,"date":"2021-06-15","sum":1234.5}`
	if string(raw) != want {
		t.Errorf("Expected %s, got %s", want, raw)
	}
}

// TestPerformancePointMarshalJSON tests the flattened ISIN-keyed shape.
func TestPerformancePointMarshalJSON(t *testing.T) {
	point := model.PerformancePoint{
		Date:  time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
		Value: 1234.5,
		ByISIN: map[string]float64{
			"IE00B4L5Y983": 1000,
			"LU0392494562": 234.5,
		},
	}

	raw, err := json.Marshal(point)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}

	want := `{"IE00B4L5Y983":1000,"LU0392494562":234.5,"date":"2021-06-15","value":1234.5}`
	if string(raw) != want {
		t.Errorf("Expected %s, got %s", want, raw)
	}
}

// TestDraftMovementJSON tests the day-granular wire form of draft movements.
func TestDraftMovementJSON(t *testing.T) {
	movement := model.DraftMovement{
		Date:       time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
		Action:     model.Buy,
		Investment: 1,
		Quantity:   10.5,
		Amount:     737.625,
		Fee:        1.5,
	}

	raw, err := json.Marshal(movement)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}

	t.Run("date travels as an ISO day string", func(t *testing.T) {
		var wire map[string]any
		if err := json.Unmarshal(raw, &wire); err != nil {
			t.Fatalf("Unmarshal() returned unexpected error: %v", err)
		}
		if wire["date"] != "2021-02-01" {
			t.Errorf("Expected date 2021-02-01, got %v", wire["date"])
		}
		if wire["action"] != float64(model.Buy) {
			t.Errorf("Expected numeric action code %d, got %v", model.Buy, wire["action"])
		}
	})

	t.Run("round-trips through the wire form", func(t *testing.T) {
		var decoded model.DraftMovement
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("Unmarshal() returned unexpected error: %v", err)
		}
		if !decoded.Date.Equal(movement.Date) {
			t.Errorf("Expected date %v, got %v", movement.Date, decoded.Date)
		}
		if decoded != movement {
			t.Errorf("Round trip changed the movement: %+v", decoded)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		var decoded model.DraftMovement
		err := json.Unmarshal([]byte(`{"date":"01.02.2021","action":1,"investment":1}`), &decoded)
		if err == nil {
			t.Error("Expected an error for a non-ISO date")
		}
	})
}
