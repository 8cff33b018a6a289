package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// PerformancePoint is one date of the ISIN-keyed performance series: the
// summed portfolio value for the date plus each investment's value keyed by
// its ISIN. Investments without a snapshot on the date are simply absent.
type PerformancePoint struct {
	Date   time.Time
	Value  float64
	ByISIN map[string]float64
}

// MarshalJSON flattens the per-ISIN values next to the date and value keys:
//
//	{"date":"2021-06-15","value":1234.5,"IE00B4L5Y983":1000,"LU0392494562":234.5}
func (p PerformancePoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.ByISIN)+2)
	flat["date"] = p.Date.Format(DayFormat)
	flat["value"] = p.Value
	for isin, value := range p.ByISIN {
		flat[isin] = value
	}
	return json.Marshal(flat)
}

// ChartPoint is one date of the id-keyed, forward-filled chart series. Values
// holds the (possibly carried-forward) value of every asset seen at or before
// Date; Sum is their total.
type ChartPoint struct {
	Date   string // ISO YYYY-MM-DD
	Values map[int64]float64
	Sum    float64
}

// MarshalJSON flattens the per-asset values next to the date and sum keys,
// with investment ids rendered as decimal strings:
//
//	{"date":"2021-06-15","1":1000,"2":234.5,"sum":1234.5}
func (p ChartPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.Values)+2)
	flat["date"] = p.Date
	flat["sum"] = p.Sum
	for id, value := range p.Values {
		flat[strconv.FormatInt(id, 10)] = value
	}
	return json.Marshal(flat)
}
