// Package entity contains the core business objects of the project.
package entity

// BloodGroup is the closed set of blood group categories used as the
// stock ledger partition key and as a donor/request attribute.
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
)

// AllBloodGroups returns every blood group in a stable order.
// The stock ledger holds exactly one entry per element of this slice.
func AllBloodGroups() []BloodGroup {
	return []BloodGroup{
		BloodGroupAPositive, BloodGroupANegative,
		BloodGroupBPositive, BloodGroupBNegative,
		BloodGroupABPositive, BloodGroupABNegative,
		BloodGroupOPositive, BloodGroupONegative,
	}
}

// String returns the string representation of the BloodGroup.
func (g BloodGroup) String() string {
	return string(g)
}

// IsValid checks if the BloodGroup is a valid value.
func (g BloodGroup) IsValid() bool {
	switch g {
	case BloodGroupAPositive, BloodGroupANegative,
		BloodGroupBPositive, BloodGroupBNegative,
		BloodGroupABPositive, BloodGroupABNegative,
		BloodGroupOPositive, BloodGroupONegative:
		return true
	default:
		return false
	}
}

// CompatibleDonors returns the donor groups whose blood a recipient of
// group g can receive. Donor matching currently uses exact-group equality
// only; this table is the extension hook for a clinically correct
// compatibility policy.
func (g BloodGroup) CompatibleDonors() []BloodGroup {
	switch g {
	case BloodGroupAPositive:
		return []BloodGroup{BloodGroupAPositive, BloodGroupANegative, BloodGroupOPositive, BloodGroupONegative}
	case BloodGroupANegative:
		return []BloodGroup{BloodGroupANegative, BloodGroupONegative}
	case BloodGroupBPositive:
		return []BloodGroup{BloodGroupBPositive, BloodGroupBNegative, BloodGroupOPositive, BloodGroupONegative}
	case BloodGroupBNegative:
		return []BloodGroup{BloodGroupBNegative, BloodGroupONegative}
	case BloodGroupABPositive:
		return AllBloodGroups()
	case BloodGroupABNegative:
		return []BloodGroup{BloodGroupANegative, BloodGroupBNegative, BloodGroupABNegative, BloodGroupONegative}
	case BloodGroupOPositive:
		return []BloodGroup{BloodGroupOPositive, BloodGroupONegative}
	case BloodGroupONegative:
		return []BloodGroup{BloodGroupONegative}
	default:
		return nil
	}
}

// StockEntry is the per-blood-group unit counter. Exactly one entry exists
// per BloodGroup, created with zero units at system initialization and
// never deleted. Units never go negative.
type StockEntry struct {
	BloodGroup BloodGroup `json:"blood_group"`
	Units      int        `json:"units"`
}
