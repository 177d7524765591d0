package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/save-a-life/pkg/core/model"
)

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		current, minimum int
		want             StockStatus
	}{
		{15, 10, StockAdequate},
		{4, 8, StockCritical},
		{5, 10, StockCritical},
		{6, 10, StockLow},
		{8, 10, StockLow},
		{9, 10, StockAdequate},
		{3, 4, StockLow},
		{0, 5, StockCritical},
		{3, 0, StockAdequate},
	}

	for _, tt := range tests {
		_, status := ClassifyStock(tt.current, tt.minimum)
		assert.Equal(t, tt.want, status, "%d/%d", tt.current, tt.minimum)
	}
}

func TestClassifyTemperature(t *testing.T) {
	tests := []struct {
		celsius float64
		want    TemperatureStatus
	}{
		{4.2, TemperatureNormal},
		{3.0, TemperatureNormal},
		{5.0, TemperatureNormal},
		{2.9, TemperatureWarning},
		{5.5, TemperatureWarning},
		{2.0, TemperatureWarning},
		{6.0, TemperatureWarning},
		{1.9, TemperatureCritical},
		{6.1, TemperatureCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTemperature(tt.celsius), "%.1f", tt.celsius)
	}
}

func TestDefaultHospitalInventory_Classification(t *testing.T) {
	rows := classifyHospital(DefaultHospitalInventory())
	require.Len(t, rows, 8)

	got := map[model.BloodType]StockStatus{}
	for _, r := range rows {
		got[r.BloodType] = r.Status
	}

	assert.Equal(t, StockAdequate, got[model.BloodTypeAPos])
	assert.Equal(t, StockCritical, got[model.BloodTypeANeg])
	assert.Equal(t, StockCritical, got[model.BloodTypeBNeg])
	assert.Equal(t, StockLow, got[model.BloodTypeABNeg])
	assert.Equal(t, StockCritical, got[model.BloodTypeONeg])
}

func TestDefaultBloodBankInventory_Totals(t *testing.T) {
	rows, units, expiring := classifyBank(DefaultBloodBankInventory())
	require.Len(t, rows, 8)
	assert.Equal(t, 244, units)
	assert.Equal(t, 30, expiring)
	for _, r := range rows {
		assert.Equal(t, TemperatureNormal, r.TemperatureStatus)
	}
}
