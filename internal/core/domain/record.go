package domain

// ASRecord is one name record for an autonomous system.
// Only Number and Name are guaranteed; the rest depend on the resolver.
type ASRecord struct {
	// Number is the autonomous system number.
	Number uint32

	// Name is the registered name of the autonomous system.
	Name string

	// Country is the ISO country code of the registrant.
	Country string

	// Registry is the regional internet registry that allocated the number.
	Registry string

	// Allocated is the allocation date as reported by the registry.
	Allocated string
}

// DisplayName returns the name shown for a list of records:
// the first record's name, or "?" for an empty list.
func DisplayName(records []ASRecord) string {
	if len(records) == 0 {
		return UnknownName
	}
	return records[0].Name
}
