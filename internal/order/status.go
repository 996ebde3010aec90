package order

type Status string

const (
	StatusPending  Status = "Pending"
	StatusDiproses Status = "Diproses"
	StatusDikirim  Status = "Dikirim"
	StatusSelesai  Status = "Selesai"
	StatusBatal    Status = "Batal"
)

// AllStatuses lists every status in workflow order.
var AllStatuses = []Status{
	StatusPending,
	StatusDiproses,
	StatusDikirim,
	StatusSelesai,
	StatusBatal,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDiproses, StatusDikirim, StatusSelesai, StatusBatal:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusSelesai || s == StatusBatal
}

// CanTransition reports whether an admin may move an order from one status to
// another. Any non-terminal order may jump directly to any of the four
// non-initial statuses; the workflow is not forced to be linear. Nothing ever
// leaves Selesai or Batal, and nothing transitions back to Pending.
func CanTransition(from, to Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from.Terminal() {
		return false
	}
	return to != StatusPending
}

// AdminActions returns the statuses an admin may move an order to, in the
// order the dashboard renders them. Empty for terminal orders.
func AdminActions(from Status) []Status {
	if !from.Valid() || from.Terminal() {
		return nil
	}
	return []Status{StatusDiproses, StatusDikirim, StatusSelesai, StatusBatal}
}
