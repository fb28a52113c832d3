package recordgen

// PageSize is the number of records in every generated page.
const PageSize = 20

// Record is one synthetic person.
type Record struct {
	SequenceNumber int    `json:"id"`
	Identifier     string `json:"uuid"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

// Page holds PageSize records in generation order.
type Page []Record

// field returns a pointer to the mutable field selected by idx (0 name,
// 1 address, 2 phone).
func (r *Record) field(idx int) *string {
	switch idx {
	case 0:
		return &r.Name
	case 1:
		return &r.Address
	default:
		return &r.Phone
	}
}
