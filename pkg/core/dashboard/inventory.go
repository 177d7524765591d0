package dashboard

import "github.com/jakechorley/save-a-life/pkg/core/model"

type StockStatus string

const (
	StockCritical StockStatus = "critical"
	StockLow      StockStatus = "low"
	StockAdequate StockStatus = "adequate"
)

type TemperatureStatus string

const (
	TemperatureCritical TemperatureStatus = "critical"
	TemperatureWarning  TemperatureStatus = "warning"
	TemperatureNormal   TemperatureStatus = "normal"
)

// HospitalStock is one row of the hospital inventory
type HospitalStock struct {
	BloodType model.BloodType `json:"bloodType"`
	Current   int             `json:"current"`
	Minimum   int             `json:"minimum"`
}

// BankStock is one row of the blood bank inventory; Temperature is in °C
type BankStock struct {
	BloodType   model.BloodType `json:"bloodType"`
	Units       int             `json:"units"`
	Expiring    int             `json:"expiring"`
	Temperature float64         `json:"temperature"`
}

// HospitalStockRow is a classified hospital inventory row
type HospitalStockRow struct {
	HospitalStock
	Percentage float64     `json:"percentage"`
	Status     StockStatus `json:"status"`
}

// BankStockRow is a classified blood bank inventory row
type BankStockRow struct {
	BankStock
	TemperatureStatus TemperatureStatus `json:"temperatureStatus"`
}

// ClassifyStock compares current stock with the minimum: at most 50% is critical,
// at most 80% is low
func ClassifyStock(current, minimum int) (float64, StockStatus) {
	if minimum <= 0 {
		return 100, StockAdequate
	}
	pct := float64(current) / float64(minimum) * 100
	switch {
	case pct <= 50:
		return pct, StockCritical
	case pct <= 80:
		return pct, StockLow
	}
	return pct, StockAdequate
}

// ClassifyTemperature: outside 2-6°C is critical, outside 3-5°C a warning
func ClassifyTemperature(celsius float64) TemperatureStatus {
	switch {
	case celsius < 2 || celsius > 6:
		return TemperatureCritical
	case celsius < 3 || celsius > 5:
		return TemperatureWarning
	}
	return TemperatureNormal
}

func classifyHospital(stock []HospitalStock) []HospitalStockRow {
	rows := make([]HospitalStockRow, len(stock))
	for i, s := range stock {
		pct, status := ClassifyStock(s.Current, s.Minimum)
		rows[i] = HospitalStockRow{HospitalStock: s, Percentage: pct, Status: status}
	}
	return rows
}

func classifyBank(stock []BankStock) (rows []BankStockRow, totalUnits, totalExpiring int) {
	rows = make([]BankStockRow, len(stock))
	for i, s := range stock {
		rows[i] = BankStockRow{BankStock: s, TemperatureStatus: ClassifyTemperature(s.Temperature)}
		totalUnits += s.Units
		totalExpiring += s.Expiring
	}
	return rows, totalUnits, totalExpiring
}
