package model

import "strings"

type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// AllBloodTypes lists every ABO/Rh combination in display order
var AllBloodTypes = []BloodType{
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
	BloodTypeOPos, BloodTypeONeg,
}

func (b BloodType) IsValid() bool {
	for _, bt := range AllBloodTypes {
		if b == bt {
			return true
		}
	}
	return false
}

// IsRhPositive reports whether the type carries the Rh(D) antigen
func (b BloodType) IsRhPositive() bool {
	return b.IsValid() && strings.HasSuffix(string(b), "+")
}

// ParseBloodType accepts the canonical form plus the unicode minus sign
// and lower-case group letters, e.g. "ab−" -> AB-
func ParseBloodType(s string) (BloodType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "−", "-")
	bt := BloodType(normalized)
	return bt, bt.IsValid()
}

type Urgency string

const (
	UrgencyCritical Urgency = "Critical"
	UrgencyUrgent   Urgency = "Urgent"
	UrgencyNormal   Urgency = "Normal"
)

func (u Urgency) IsValid() bool {
	return u == UrgencyCritical || u == UrgencyUrgent || u == UrgencyNormal
}

// Rank orders urgencies for display emphasis: Critical > Urgent > Normal
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyUrgent:
		return 2
	case UrgencyNormal:
		return 1
	}
	return 0
}
